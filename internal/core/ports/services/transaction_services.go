package services

import (
	"context"

	"github.com/hanjoon-dev/account_manager_app/internal/dto"
)

// TransactionServicer is the balance mutation surface consumed by the HTTP
// layer.
type TransactionServicer interface {
	// SpendBalance debits the account and records a COMMITTED transaction.
	SpendBalance(ctx context.Context, req dto.SpendBalanceRequest) (*dto.SpendBalanceResponse, error)

	// AbortTransaction reverses a committed transaction, crediting the
	// exact amount back. Terminal and non-repeatable.
	AbortTransaction(ctx context.Context, req dto.AbortTransactionRequest) (*dto.AbortTransactionResponse, error)

	// CheckTransaction returns the transaction detail. Read-only.
	CheckTransaction(ctx context.Context, transactionID string) (*dto.CheckTransactionResponse, error)
}
