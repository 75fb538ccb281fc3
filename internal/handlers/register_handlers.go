package handlers

import (
	"regexp"

	portssvc "github.com/hanjoon-dev/account_manager_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var accountNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// acctnum validates the externally visible account number format: exactly
// ten decimal digits.
func acctnum(fl validator.FieldLevel) bool {
	return accountNumberPattern.MatchString(fl.Field().String())
}

// RegisterValidations installs custom binding rules on gin's validator
// engine. Must run once before routes are served; tests that bind DTOs
// call it too.
func RegisterValidations() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("acctnum", acctnum)
	}
	return nil
}

// RegisterRoutes wires the six core operations under /api.
func RegisterRoutes(r *gin.Engine, accountService portssvc.AccountServicer, transactionService portssvc.TransactionServicer) {
	api := r.Group("/api")

	ah := newAccountHandler(accountService)
	account := api.Group("/account")
	{
		account.POST("", ah.createAccount)
		account.DELETE("", ah.closeAccount)
		account.GET("/:clientUsername", ah.listAccount)
	}

	th := newTransactionHandler(transactionService)
	transaction := api.Group("/transaction")
	{
		transaction.POST("/spend", th.spendBalance)
		transaction.POST("/abort", th.abortTransaction)
		transaction.GET("/:transactionId", th.checkTransaction)
	}
}
