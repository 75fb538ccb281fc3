package repositories

import (
	"context"

	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ClientRepository is the lookup surface for client identities. The core
// never mutates clients; SaveClient exists for the external provisioning
// step that seeds demo data.
type ClientRepository interface {
	// FindClientByUsername retrieves a client by its unique username.
	// Returns apperrors.ErrNotFound when no such client exists.
	FindClientByUsername(ctx context.Context, username string) (*domain.Client, error)

	// FindClientByUsernameForUpdate retrieves a client and locks its row,
	// serializing account creations per client. Must be called within a
	// transaction.
	FindClientByUsernameForUpdate(ctx context.Context, tx pgx.Tx, username string) (*domain.Client, error)

	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error
}
