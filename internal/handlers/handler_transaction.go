package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/hanjoon-dev/account_manager_app/internal/core/ports/services"
	"github.com/hanjoon-dev/account_manager_app/internal/dto"
	"github.com/hanjoon-dev/account_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionServicer
}

func newTransactionHandler(ts portssvc.TransactionServicer) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// spendBalance godoc
// @Summary Spend balance
// @Description Debits the account and records a COMMITTED transaction. Checks, in order: client exists, account exists, client owns the account, account is open, balance covers the amount, amount is at least 100 and at most 1000000000.
// @Tags transaction
// @Accept  json
// @Produce  json
// @Param   spend body dto.SpendBalanceRequest true "Spend details"
// @Success 200 {object} dto.SpendBalanceResponse
// @Failure 400 {object} ErrorResponse "Malformed request or failed validation gate"
// @Failure 404 {object} ErrorResponse "Client or account not found"
// @Router /api/transaction/spend [post]
func (h *transactionHandler) spendBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SpendBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SpendBalance", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	resp, err := h.transactionService.SpendBalance(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// abortTransaction godoc
// @Summary Abort a transaction
// @Description Reverses a committed transaction and credits the amount back. The request must match the transaction's account and exact amount; an already aborted transaction cannot be aborted again.
// @Tags transaction
// @Accept  json
// @Produce  json
// @Param   abort body dto.AbortTransactionRequest true "Abort details"
// @Success 200 {object} dto.AbortTransactionResponse
// @Failure 400 {object} ErrorResponse "Malformed request, mismatched account or amount, or transaction not committed"
// @Failure 404 {object} ErrorResponse "Account or transaction not found"
// @Router /api/transaction/abort [post]
func (h *transactionHandler) abortTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AbortTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AbortTransaction", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	resp, err := h.transactionService.AbortTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// checkTransaction godoc
// @Summary Check a transaction
// @Description Returns the transaction detail for the given id. Read-only.
// @Tags transaction
// @Produce  json
// @Param   transactionId path string true "Transaction id"
// @Success 200 {object} dto.CheckTransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Router /api/transaction/{transactionId} [get]
func (h *transactionHandler) checkTransaction(c *gin.Context) {
	transactionID := c.Param("transactionId")

	resp, err := h.transactionService.CheckTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
