package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hanjoon-dev/account_manager_app/internal/apperrors"
	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	portsrepo "github.com/hanjoon-dev/account_manager_app/internal/core/ports/repositories"
	"github.com/hanjoon-dev/account_manager_app/internal/dto"
	"github.com/hanjoon-dev/account_manager_app/internal/middleware"
	"github.com/google/uuid"
)

// maxActiveAccounts bounds a client's accounts whose status is not CLOSED.
// Closed accounts never count toward the cap.
const maxActiveAccounts = 10

// AccountService implements the account lifecycle: create under the
// active-ownership cap, close with ordered validation gates, and list
// non-closed accounts in creation order.
type AccountService struct {
	clientRepo  portsrepo.ClientRepository
	accountRepo portsrepo.AccountRepository
	txManager   portsrepo.TransactionManager

	now       func() time.Time
	numberGen AccountNumberGenerator
}

func NewAccountService(
	clientRepo portsrepo.ClientRepository,
	accountRepo portsrepo.AccountRepository,
	txManager portsrepo.TransactionManager,
) *AccountService {
	return &AccountService{
		clientRepo:  clientRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
		now:         time.Now,
		numberGen:   NewRandomAccountNumberGenerator(),
	}
}

// WithClock overrides the time source; used by tests for deterministic
// timestamp fields.
func (s *AccountService) WithClock(now func() time.Time) *AccountService {
	s.now = now
	return s
}

// WithNumberGenerator overrides the account-number candidate source.
func (s *AccountService) WithNumberGenerator(gen AccountNumberGenerator) *AccountService {
	s.numberGen = gen
	return s
}

// CreateAccount opens a new ACTIVE account for the client. The client row is
// locked for the duration of the unit of work so concurrent creations for
// the same client cannot both pass the cap check.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*dto.CreateAccountResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	client, err := s.clientRepo.FindClientByUsernameForUpdate(ctx, tx, req.ClientUsername)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		logger.Error("Failed to find client by username", slog.String("error", err.Error()), slog.String("client_username", req.ClientUsername))
		return nil, fmt.Errorf("failed to find client %s: %w", req.ClientUsername, err)
	}

	accounts, err := s.accountRepo.FindAccountsByClientID(ctx, client.ClientID)
	if err != nil {
		logger.Error("Failed to list client accounts", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to list accounts for client %s: %w", client.ClientID, err)
	}
	active := 0
	for _, acc := range accounts {
		if !acc.IsClosed() {
			active++
		}
	}
	if active >= maxActiveAccounts {
		return nil, apperrors.ErrAccountLimitReached
	}

	accountNumber, err := s.nextFreeAccountNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		ClientID:      client.ClientID,
		AccountNumber: accountNumber,
		Status:        domain.AccountStatusActive,
		Balance:       *req.InitialBalance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.accountRepo.SaveAccountInTx(ctx, tx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_number", accountNumber))
		return nil, fmt.Errorf("failed to save account %s: %w", accountNumber, err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Account created", slog.String("account_number", accountNumber), slog.String("client_username", client.Username))
	return &dto.CreateAccountResponse{
		ClientUsername: client.Username,
		AccountNumber:  account.AccountNumber,
		CreatedAt:      account.CreatedAt,
	}, nil
}

// nextFreeAccountNumber draws candidates until one is unused. Collisions are
// vanishingly rare in the 10-digit space, so the loop is unbounded by
// design: exhaustion is not a reachable state at real-world scale.
func (s *AccountService) nextFreeAccountNumber(ctx context.Context) (string, error) {
	for {
		candidate := s.numberGen.Next()
		_, err := s.accountRepo.FindAccountByNumber(ctx, candidate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check account number %s: %w", candidate, err)
		}
		// Candidate taken, draw again.
	}
}

// CloseAccount terminally closes an account. The gate order is fixed:
// client existence, account existence, ownership, already-closed, non-zero
// balance. Each gate surfaces its own error code.
func (s *AccountService) CloseAccount(ctx context.Context, req dto.CloseAccountRequest) (*dto.CloseAccountResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByUsername(ctx, req.ClientUsername)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client %s: %w", req.ClientUsername, err)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	account, err := s.accountRepo.FindAccountByNumberForUpdate(ctx, tx, req.AccountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", req.AccountNumber, err)
	}

	if account.ClientID != client.ClientID {
		return nil, apperrors.ErrAccountOwnedByOtherClient
	}
	if account.IsClosed() {
		return nil, apperrors.ErrAccountClosed
	}
	if account.Balance != 0 {
		return nil, apperrors.ErrAccountWithBalance
	}

	now := s.now()
	account.Status = domain.AccountStatusClosed
	account.ClosedAt = &now
	account.UpdatedAt = now
	if err := s.accountRepo.UpdateAccountInTx(ctx, tx, *account); err != nil {
		logger.Error("Failed to close account", slog.String("error", err.Error()), slog.String("account_number", account.AccountNumber))
		return nil, fmt.Errorf("failed to close account %s: %w", account.AccountNumber, err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Account closed", slog.String("account_number", account.AccountNumber), slog.String("client_username", client.Username))
	return &dto.CloseAccountResponse{
		ClientUsername: client.Username,
		AccountNumber:  account.AccountNumber,
		ClosedAt:       now,
	}, nil
}

// ListAccount returns the client's accounts with status != CLOSED, reduced
// to (accountNumber, balance), in creation order. Closed accounts are
// filtered out without reordering the rest.
func (s *AccountService) ListAccount(ctx context.Context, clientUsername string) (*dto.ListAccountResponse, error) {
	client, err := s.clientRepo.FindClientByUsername(ctx, clientUsername)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientUsername, err)
	}

	accounts, err := s.accountRepo.FindAccountsByClientID(ctx, client.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for client %s: %w", client.ClientID, err)
	}

	open := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if !acc.IsClosed() {
			open = append(open, acc)
		}
	}

	return &dto.ListAccountResponse{
		ClientUsername: client.Username,
		Accounts:       dto.ToAccountNumberAndBalances(open),
	}, nil
}
