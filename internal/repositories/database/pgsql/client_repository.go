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

type PgxClientRepository struct {
	BaseRepository
}

// NewClientRepository creates a new repository for client data.
func NewClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxClientRepository implements the port.
var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

const clientColumns = `client_id, username, created_at`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var client domain.Client
	err := row.Scan(
		&client.ClientID,
		&client.Username,
		&client.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan client: %w", err)
	}
	return &client, nil
}

// FindClientByUsername retrieves a client by its unique username.
func (r *PgxClientRepository) FindClientByUsername(ctx context.Context, username string) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE username = $1;
	`
	return scanClient(r.Pool.QueryRow(ctx, query, username))
}

// FindClientByUsernameForUpdate retrieves a client and locks its row for
// the duration of the transaction.
func (r *PgxClientRepository) FindClientByUsernameForUpdate(ctx context.Context, tx pgx.Tx, username string) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE username = $1
		FOR UPDATE;
	`
	return scanClient(tx.QueryRow(ctx, query, username))
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (client_id, username, created_at)
		VALUES ($1, $2, $3);
	`
	_, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.Username,
		client.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: client with username %s already exists", apperrors.ErrDuplicate, client.Username)
		}
		return fmt.Errorf("failed to save client %s: %w", client.Username, err)
	}
	return nil
}
