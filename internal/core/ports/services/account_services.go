package services

import (
	"context"

	"github.com/hanjoon-dev/account_manager_app/internal/dto"
)

// AccountServicer is the account lifecycle surface consumed by the HTTP
// layer. Failures are apperrors.BusinessError values, never panics.
type AccountServicer interface {
	// CreateAccount opens a new active account for the client, subject to
	// the active-ownership cap.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*dto.CreateAccountResponse, error)

	// CloseAccount terminally closes an owned, zero-balance account.
	CloseAccount(ctx context.Context, req dto.CloseAccountRequest) (*dto.CloseAccountResponse, error)

	// ListAccount returns the client's non-closed accounts in creation order.
	ListAccount(ctx context.Context, clientUsername string) (*dto.ListAccountResponse, error)
}
