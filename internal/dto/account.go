package dto

import (
	"time"

	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
// InitialBalance is a pointer so that an explicit zero passes `required`
// binding; zero is a valid opening balance.
type CreateAccountRequest struct {
	ClientUsername string `json:"clientUsername" binding:"required" example:"clientWithoutAccount"`
	InitialBalance *int64 `json:"initialBalance" binding:"required,gte=0" example:"500"`
}

// CreateAccountResponse defines the data returned after opening an account.
type CreateAccountResponse struct {
	ClientUsername string    `json:"clientUsername" example:"clientWithoutAccount"`
	AccountNumber  string    `json:"accountNumber" example:"1000000011"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CloseAccountRequest defines the data needed to close an account.
type CloseAccountRequest struct {
	ClientUsername string `json:"clientUsername" binding:"required" example:"clientWithTenAccount"`
	AccountNumber  string `json:"accountNumber" binding:"required,acctnum" example:"1000000010"`
}

// CloseAccountResponse defines the data returned after closing an account.
type CloseAccountResponse struct {
	ClientUsername string    `json:"clientUsername" example:"clientWithTenAccount"`
	AccountNumber  string    `json:"accountNumber" example:"1000000010"`
	ClosedAt       time.Time `json:"closedAt"`
}

// AccountNumberAndBalance is one entry of a client's account listing.
type AccountNumberAndBalance struct {
	AccountNumber string `json:"accountNumber" example:"1000000000"`
	Balance       int64  `json:"balance" example:"10000"`
}

// ListAccountResponse lists a client's open accounts in creation order.
type ListAccountResponse struct {
	ClientUsername string                    `json:"clientUsername" example:"clientWithTenAccount"`
	Accounts       []AccountNumberAndBalance `json:"accounts"`
}

// ToAccountNumberAndBalances reduces accounts to their listing entries,
// preserving order.
func ToAccountNumberAndBalances(accounts []domain.Account) []AccountNumberAndBalance {
	entries := make([]AccountNumberAndBalance, len(accounts))
	for i, acc := range accounts {
		entries[i] = AccountNumberAndBalance{
			AccountNumber: acc.AccountNumber,
			Balance:       acc.Balance,
		}
	}
	return entries
}
