package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/hanjoon-dev/account_manager_app/internal/core/ports/services"
	"github.com/hanjoon-dev/account_manager_app/internal/dto"
	"github.com/hanjoon-dev/account_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountServicer
}

func newAccountHandler(as portssvc.AccountServicer) *accountHandler {
	return &accountHandler{accountService: as}
}

// createAccount godoc
// @Summary Create an account
// @Description Opens a new account for the client if the client exists and has fewer than 10 open accounts. The initial balance is accepted as provided; zero is valid.
// @Tags account
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 200 {object} dto.CreateAccountResponse
// @Failure 400 {object} ErrorResponse "Malformed request or account limit reached"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Router /api/account [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	resp, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// closeAccount godoc
// @Summary Close an account
// @Description Closes an account if the client exists, the account exists, the client owns it, it is not already closed, and its balance is zero. Closed accounts remain in storage.
// @Tags account
// @Accept  json
// @Produce  json
// @Param   account body dto.CloseAccountRequest true "Account to close"
// @Success 200 {object} dto.CloseAccountResponse
// @Failure 400 {object} ErrorResponse "Malformed request, foreign ownership, already closed, or non-zero balance"
// @Failure 404 {object} ErrorResponse "Client or account not found"
// @Router /api/account [delete]
func (h *accountHandler) closeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CloseAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseAccount", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	resp, err := h.accountService.CloseAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listAccount godoc
// @Summary List a client's open accounts
// @Description Returns the client's non-closed accounts as (accountNumber, balance) pairs, in the order they were created.
// @Tags account
// @Produce  json
// @Param   clientUsername path string true "Client username" example(clientWithTenAccount)
// @Success 200 {object} dto.ListAccountResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Router /api/account/{clientUsername} [get]
func (h *accountHandler) listAccount(c *gin.Context) {
	clientUsername := c.Param("clientUsername")

	resp, err := h.accountService.ListAccount(c.Request.Context(), clientUsername)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
