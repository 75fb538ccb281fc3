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

// Spend amount thresholds, in the smallest currency unit. The
// funds-sufficiency gate is evaluated before either threshold: an amount
// that both exceeds the balance and violates a threshold surfaces as
// insufficient funds.
const (
	minSpendAmount = 100
	maxSpendAmount = 1_000_000_000
)

// TransactionService implements the balance mutation engine: spend (debit
// with a COMMITTED transaction record), abort (exact reversal) and the
// read-only transaction lookup.
type TransactionService struct {
	clientRepo      portsrepo.ClientRepository
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
	txManager       portsrepo.TransactionManager
	cache           portsrepo.TransactionCache

	now func() time.Time
}

func NewTransactionService(
	clientRepo portsrepo.ClientRepository,
	accountRepo portsrepo.AccountRepository,
	transactionRepo portsrepo.TransactionRepository,
	txManager portsrepo.TransactionManager,
	cache portsrepo.TransactionCache,
) *TransactionService {
	return &TransactionService{
		clientRepo:      clientRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		cache:           cache,
		now:             time.Now,
	}
}

// WithClock overrides the time source; used by tests for deterministic
// timestamp fields.
func (s *TransactionService) WithClock(now func() time.Time) *TransactionService {
	s.now = now
	return s
}

// SpendBalance debits the account and records a transaction. The account
// row is locked before validation, so concurrent spends on the same account
// serialize and no debit is lost. Gate order: ownership, closed status,
// sufficient funds, min threshold, max threshold.
func (s *TransactionService) SpendBalance(ctx context.Context, req dto.SpendBalanceRequest) (*dto.SpendBalanceResponse, error) {
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

	amount := *req.Amount
	if account.Balance < amount {
		return nil, apperrors.ErrTransactionInsufficientFunds
	}
	if amount < minSpendAmount {
		return nil, apperrors.ErrTransactionBelowMinThreshold
	}
	if amount > maxSpendAmount {
		return nil, apperrors.ErrTransactionExceedsMaxThreshold
	}

	now := s.now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     account.AccountID,
		Status:        domain.TransactionStatusActive,
		Amount:        amount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.transactionRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("account_number", account.AccountNumber))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	account.Balance -= amount
	account.UpdatedAt = now
	if err := s.accountRepo.UpdateAccountInTx(ctx, tx, *account); err != nil {
		logger.Error("Failed to debit account", slog.String("error", err.Error()), slog.String("account_number", account.AccountNumber))
		return nil, fmt.Errorf("failed to debit account %s: %w", account.AccountNumber, err)
	}

	// ACTIVE is transient: the transaction commits as COMMITTED within the
	// same unit of work and is never observable as ACTIVE.
	txn.Status = domain.TransactionStatusCommitted
	if err := s.transactionRepo.UpdateTransactionInTx(ctx, tx, txn); err != nil {
		logger.Error("Failed to commit transaction record", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to commit transaction %s: %w", txn.TransactionID, err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Balance spent",
		slog.String("account_number", account.AccountNumber),
		slog.String("transaction_id", txn.TransactionID),
		slog.Int64("amount", amount),
	)
	return &dto.SpendBalanceResponse{
		AccountNumber:     account.AccountNumber,
		TransactionStatus: txn.Status,
		TransactionID:     txn.TransactionID,
		Amount:            txn.Amount,
		CreatedAt:         txn.CreatedAt,
	}, nil
}

// AbortTransaction reverses a committed transaction and credits the exact
// amount back. Authorization is the account number / transaction id /
// amount triple; no client identity is taken. Gate order: account
// existence, transaction existence, account match, amount match, committed
// state. A second abort of the same transaction fails the state gate.
func (s *TransactionService) AbortTransaction(ctx context.Context, req dto.AbortTransactionRequest) (*dto.AbortTransactionResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

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

	txn, err := s.transactionRepo.FindTransactionByIDForUpdate(ctx, tx, req.TransactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", req.TransactionID, err)
	}

	if txn.AccountID != account.AccountID {
		return nil, apperrors.ErrTransactionAccountNotMatched
	}
	if txn.Amount != *req.Amount {
		return nil, apperrors.ErrTransactionInvalidAmount
	}
	if txn.Status != domain.TransactionStatusCommitted {
		return nil, apperrors.ErrTransactionNotCommitted
	}

	now := s.now()
	txn.Status = domain.TransactionStatusAborted
	txn.AbortedAt = &now
	txn.UpdatedAt = now
	account.Balance += txn.Amount
	account.UpdatedAt = now

	if err := s.accountRepo.UpdateAccountInTx(ctx, tx, *account); err != nil {
		logger.Error("Failed to credit account", slog.String("error", err.Error()), slog.String("account_number", account.AccountNumber))
		return nil, fmt.Errorf("failed to credit account %s: %w", account.AccountNumber, err)
	}
	if err := s.transactionRepo.UpdateTransactionInTx(ctx, tx, *txn); err != nil {
		logger.Error("Failed to abort transaction record", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to abort transaction %s: %w", txn.TransactionID, err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	// Cache is best effort; a failed invalidation only costs a stale read
	// until the TTL expires.
	if err := s.cache.InvalidateTransactionDetail(ctx, txn.TransactionID); err != nil {
		logger.Warn("Failed to invalidate transaction cache", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
	}

	logger.Info("Transaction aborted",
		slog.String("account_number", account.AccountNumber),
		slog.String("transaction_id", txn.TransactionID),
		slog.Int64("amount", txn.Amount),
	)
	return &dto.AbortTransactionResponse{
		AccountNumber:     account.AccountNumber,
		TransactionStatus: txn.Status,
		TransactionID:     txn.TransactionID,
		Amount:            txn.Amount,
		AbortedAt:         now,
	}, nil
}

// CheckTransaction returns the transaction detail, read-through cached.
func (s *TransactionService) CheckTransaction(ctx context.Context, transactionID string) (*dto.CheckTransactionResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	detail, err := s.cache.GetTransactionDetail(ctx, transactionID)
	if err != nil {
		logger.Warn("Transaction cache read failed", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
	} else if detail != nil {
		return checkResponseFromDetail(*detail), nil
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s for transaction %s: %w", txn.AccountID, transactionID, err)
	}

	fresh := portsrepo.TransactionDetail{
		TransactionID: txn.TransactionID,
		AccountNumber: account.AccountNumber,
		Status:        txn.Status,
		Amount:        txn.Amount,
		CreatedAt:     txn.CreatedAt,
	}
	if err := s.cache.SetTransactionDetail(ctx, fresh); err != nil {
		logger.Warn("Transaction cache write failed", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
	}

	return checkResponseFromDetail(fresh), nil
}

func checkResponseFromDetail(d portsrepo.TransactionDetail) *dto.CheckTransactionResponse {
	return &dto.CheckTransactionResponse{
		TransactionID:     d.TransactionID,
		AccountNumber:     d.AccountNumber,
		TransactionStatus: d.Status,
		Amount:            d.Amount,
		CreatedAt:         d.CreatedAt,
	}
}
