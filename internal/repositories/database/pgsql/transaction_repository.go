package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanjoon-dev/account_manager_app/internal/apperrors"
	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	portsrepo "github.com/hanjoon-dev/account_manager_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements the port.
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, account_id, status, amount, aborted_at, created_at, updated_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.AccountID,
		&txn.Status,
		&txn.Amount,
		&txn.AbortedAt,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return &txn, nil
}

// FindTransactionByID retrieves a transaction by its id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	return scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
}

// FindTransactionByIDForUpdate retrieves a transaction by id and locks the
// row until the transaction ends.
func (r *PgxTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1
		FOR UPDATE;
	`
	return scanTransaction(tx.QueryRow(ctx, query, transactionID))
}

// SaveTransactionInTx inserts a new transaction within the given database
// transaction.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, account_id, status, amount, aborted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.AccountID,
		txn.Status,
		txn.Amount,
		txn.AbortedAt,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// UpdateTransactionInTx rewrites the transaction's mutable fields within
// the given database transaction.
func (r *PgxTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET status = $2, aborted_at = $3, updated_at = $4
		WHERE transaction_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.Status,
		txn.AbortedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
