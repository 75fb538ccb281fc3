package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hanjoon-dev/account_manager_app/internal/apperrors"
	"github.com/hanjoon-dev/account_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	ErrorCode    string `json:"errorCode" example:"ACCOUNT_NOT_FOUND"`
	ErrorMessage string `json:"errorMessage" example:"there is no account with requested account number"`
}

// statusForCode maps the business-error taxonomy onto HTTP statuses:
// missing resources are 404, every other failed validation gate is 400.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.CodeClientNotFound,
		apperrors.CodeAccountNotFound,
		apperrors.CodeTransactionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// respondError writes the error response for a failed service call. Business
// errors pass through untranslated; anything else is an internal failure.
func respondError(c *gin.Context, err error) {
	var businessErr *apperrors.BusinessError
	if errors.As(err, &businessErr) {
		c.JSON(statusForCode(businessErr.Code), ErrorResponse{
			ErrorCode:    string(businessErr.Code),
			ErrorMessage: businessErr.Description,
		})
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode:    "INTERNAL_ERROR",
		ErrorMessage: "internal server error",
	})
}

// respondBindingError writes the response for a malformed request body or
// path parameter.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		ErrorCode:    "INVALID_REQUEST",
		ErrorMessage: "invalid request format: " + err.Error(),
	})
}
