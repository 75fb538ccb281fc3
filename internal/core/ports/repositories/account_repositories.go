package repositories

import (
	"context"

	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByNumber retrieves an account by its externally visible
	// account number. Returns apperrors.ErrNotFound when absent.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindAccountByID retrieves an account by its surrogate id.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByClientID retrieves every account owned by a client,
	// closed ones included, in the order they were created.
	FindAccountsByClientID(ctx context.Context, clientID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations bound to a database
// transaction. Locking the account row serializes concurrent
// read-validate-write sequences on the same account.
type AccountTransactionSupport interface {
	// SaveAccountInTx persists a new account within the given transaction.
	SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// FindAccountByNumberForUpdate selects an account by number and locks
	// the row for update. Must be called within a transaction.
	FindAccountByNumberForUpdate(ctx context.Context, tx pgx.Tx, accountNumber string) (*domain.Account, error)

	// UpdateAccountInTx rewrites the account's mutable fields (balance,
	// status, closed_at, updated_at) within the given transaction.
	UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
