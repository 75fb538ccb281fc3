package dto

import (
	"time"

	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
)

// SpendBalanceRequest defines the data needed to debit an account.
type SpendBalanceRequest struct {
	ClientUsername string `json:"clientUsername" binding:"required" example:"clientWithOneAccount"`
	AccountNumber  string `json:"accountNumber" binding:"required,acctnum" example:"1000000000"`
	Amount         *int64 `json:"amount" binding:"required" example:"5001"`
}

// SpendBalanceResponse defines the data returned after a successful spend.
type SpendBalanceResponse struct {
	AccountNumber     string                   `json:"accountNumber" example:"1000000000"`
	TransactionStatus domain.TransactionStatus `json:"transactionStatus" example:"COMMITTED"`
	TransactionID     string                   `json:"transactionId"`
	Amount            int64                    `json:"amount" example:"5001"`
	CreatedAt         time.Time                `json:"createdAt"`
}

// AbortTransactionRequest defines the data needed to reverse a committed
// transaction. No client identity is taken: an abort is authorized by the
// exact account number / transaction id / amount triple.
type AbortTransactionRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required,acctnum" example:"1000000000"`
	TransactionID string `json:"transactionId" binding:"required"`
	Amount        *int64 `json:"amount" binding:"required" example:"5001"`
}

// AbortTransactionResponse defines the data returned after a successful abort.
type AbortTransactionResponse struct {
	AccountNumber     string                   `json:"accountNumber" example:"1000000000"`
	TransactionStatus domain.TransactionStatus `json:"transactionStatus" example:"ABORTED"`
	TransactionID     string                   `json:"transactionId"`
	Amount            int64                    `json:"amount" example:"5001"`
	AbortedAt         time.Time                `json:"abortedAt"`
}

// CheckTransactionResponse defines the read-only transaction detail.
type CheckTransactionResponse struct {
	TransactionID     string                   `json:"transactionId"`
	AccountNumber     string                   `json:"accountNumber" example:"1000000000"`
	TransactionStatus domain.TransactionStatus `json:"transactionStatus" example:"COMMITTED"`
	Amount            int64                    `json:"amount" example:"5001"`
	CreatedAt         time.Time                `json:"createdAt"`
}
