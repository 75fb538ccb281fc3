package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanjoon-dev/account_manager_app/internal/apperrors"
	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	portsrepo "github.com/hanjoon-dev/account_manager_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements the port.
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, client_id, account_number, status, balance, closed_at, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.AccountID,
		&account.ClientID,
		&account.AccountNumber,
		&account.Status,
		&account.Balance,
		&account.ClosedAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return &account, nil
}

// FindAccountByNumber retrieves an account by its account number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_number = $1;
	`
	return scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
}

// FindAccountByID retrieves an account by its surrogate id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1;
	`
	return scanAccount(r.Pool.QueryRow(ctx, query, accountID))
}

// FindAccountsByClientID retrieves all accounts owned by a client in
// creation order, closed accounts included.
func (r *PgxAccountRepository) FindAccountsByClientID(ctx context.Context, clientID string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE client_id = $1
		ORDER BY created_at, account_number;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for client %s: %w", clientID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for client %s: %w", clientID, err)
		}
		accounts = append(accounts, *account)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for client %s: %w", clientID, rows.Err())
	}
	return accounts, nil
}

// FindAccountByNumberForUpdate retrieves an account by number and locks the
// row until the transaction ends. Concurrent units of work on the same
// account queue on this lock.
func (r *PgxAccountRepository) FindAccountByNumberForUpdate(ctx context.Context, tx pgx.Tx, accountNumber string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_number = $1
		FOR UPDATE;
	`
	return scanAccount(tx.QueryRow(ctx, query, accountNumber))
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return saveAccount(ctx, r.Pool, account)
}

// SaveAccountInTx inserts a new account within the given transaction.
func (r *PgxAccountRepository) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	return saveAccount(ctx, tx, account)
}

// execer covers both pool and transaction handles for shared statements.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func saveAccount(ctx context.Context, db execer, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, client_id, account_number, status, balance, closed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := db.Exec(ctx, query,
		account.AccountID,
		account.ClientID,
		account.AccountNumber,
		account.Status,
		account.Balance,
		account.ClosedAt,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
		}
		return fmt.Errorf("failed to save account %s: %w", account.AccountNumber, err)
	}
	return nil
}

// UpdateAccountInTx rewrites the account's mutable fields within the given
// transaction.
func (r *PgxAccountRepository) UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	query := `
		UPDATE accounts
		SET status = $2, balance = $3, closed_at = $4, updated_at = $5
		WHERE account_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		account.AccountID,
		account.Status,
		account.Balance,
		account.ClosedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
