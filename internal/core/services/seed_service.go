package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hanjoon-dev/account_manager_app/internal/apperrors"
	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	portsrepo "github.com/hanjoon-dev/account_manager_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// SeedService provisions the demo clients and accounts. It is an explicit
// startup step invoked once by the application when enabled; the core never
// assumes this data exists.
type SeedService struct {
	clientRepo  portsrepo.ClientRepository
	accountRepo portsrepo.AccountRepository

	now func() time.Time
}

func NewSeedService(clientRepo portsrepo.ClientRepository, accountRepo portsrepo.AccountRepository) *SeedService {
	return &SeedService{
		clientRepo:  clientRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

// SeedDemoData creates the demo clients and their fixed account numbers.
// Idempotent: a client that already exists is skipped together with its
// accounts.
func (s *SeedService) SeedDemoData(ctx context.Context, logger *slog.Logger) error {
	if err := s.seedClient(ctx, logger, "clientWithoutAccount", nil); err != nil {
		return err
	}

	oneAccount := []domain.Account{
		demoAccount("1000000000", 10_000),
	}
	if err := s.seedClient(ctx, logger, "clientWithOneAccount", oneAccount); err != nil {
		return err
	}

	tenAccounts := make([]domain.Account, 0, 10)
	for i := 1; i <= 10; i++ {
		var balance int64
		if i < 5 {
			balance = 10_000
		}
		tenAccounts = append(tenAccounts, demoAccount(strconv.Itoa(1_000_000_000+i), balance))
	}
	return s.seedClient(ctx, logger, "clientWithTenAccount", tenAccounts)
}

func (s *SeedService) seedClient(ctx context.Context, logger *slog.Logger, username string, accounts []domain.Account) error {
	_, err := s.clientRepo.FindClientByUsername(ctx, username)
	if err == nil {
		logger.Info("Demo client already provisioned, skipping", slog.String("client_username", username))
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check demo client %s: %w", username, err)
	}

	now := s.now()
	client := domain.Client{
		ClientID:  uuid.NewString(),
		Username:  username,
		CreatedAt: now,
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return fmt.Errorf("failed to seed demo client %s: %w", username, err)
	}

	for _, account := range accounts {
		account.ClientID = client.ClientID
		account.CreatedAt = now
		account.UpdatedAt = now
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to seed demo account %s: %w", account.AccountNumber, err)
		}
	}

	logger.Info("Demo client provisioned", slog.String("client_username", username), slog.Int("accounts", len(accounts)))
	return nil
}

func demoAccount(number string, balance int64) domain.Account {
	return domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: number,
		Status:        domain.AccountStatusActive,
		Balance:       balance,
	}
}
