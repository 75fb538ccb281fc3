package repositories

import (
	"context"
	"time"

	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its id.
	// Returns apperrors.ErrNotFound when absent.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionTransactionSupport defines operations bound to a database
// transaction.
type TransactionTransactionSupport interface {
	// SaveTransactionInTx persists a new transaction within the given
	// database transaction.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// FindTransactionByIDForUpdate selects a transaction by id and locks
	// the row for update. Must be called within a transaction.
	FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error)

	// UpdateTransactionInTx rewrites the transaction's mutable fields
	// (status, aborted_at, updated_at) within the given transaction.
	UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepository combines all transaction-related repository interfaces.
type TransactionRepository interface {
	TransactionReader
	TransactionTransactionSupport
}

// TransactionDetail is the read model served by transaction lookups and
// stored in the lookup cache.
type TransactionDetail struct {
	TransactionID string                   `json:"transactionId"`
	AccountNumber string                   `json:"accountNumber"`
	Status        domain.TransactionStatus `json:"transactionStatus"`
	Amount        int64                    `json:"amount"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// TransactionCache fronts transaction lookups. Implementations may miss at
// any time; the caller falls back to the repository. Invalidate must be
// called after any status change so stale detail is never served.
type TransactionCache interface {
	GetTransactionDetail(ctx context.Context, transactionID string) (*TransactionDetail, error)
	SetTransactionDetail(ctx context.Context, detail TransactionDetail) error
	InvalidateTransactionDetail(ctx context.Context, transactionID string) error
}
