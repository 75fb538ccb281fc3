package services_test

import (
	"context"

	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	portsrepo "github.com/hanjoon-dev/account_manager_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByUsername(ctx context.Context, username string) (*domain.Client, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByUsernameForUpdate(ctx context.Context, tx pgx.Tx, username string) (*domain.Client, error) {
	args := m.Called(ctx, tx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByClientID(ctx context.Context, clientID string) ([]domain.Account, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByNumberForUpdate(ctx context.Context, tx pgx.Tx, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, tx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// --- Stub TransactionManager ---

// stubTxManager satisfies the TransactionManager port without a real
// database transaction; tests assert on commit/rollback counts.
type stubTxManager struct {
	begins    int
	commits   int
	rollbacks int
}

func (s *stubTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	s.begins++
	return nil, nil
}

func (s *stubTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	s.commits++
	return nil
}

func (s *stubTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	s.rollbacks++
	return nil
}

// --- Stub TransactionCache ---

// stubTransactionCache is an in-memory TransactionCache recording
// invalidations.
type stubTransactionCache struct {
	store       map[string]portsrepo.TransactionDetail
	invalidated []string
}

func newStubTransactionCache() *stubTransactionCache {
	return &stubTransactionCache{store: map[string]portsrepo.TransactionDetail{}}
}

func (c *stubTransactionCache) GetTransactionDetail(ctx context.Context, transactionID string) (*portsrepo.TransactionDetail, error) {
	detail, ok := c.store[transactionID]
	if !ok {
		return nil, nil
	}
	return &detail, nil
}

func (c *stubTransactionCache) SetTransactionDetail(ctx context.Context, detail portsrepo.TransactionDetail) error {
	c.store[detail.TransactionID] = detail
	return nil
}

func (c *stubTransactionCache) InvalidateTransactionDetail(ctx context.Context, transactionID string) error {
	delete(c.store, transactionID)
	c.invalidated = append(c.invalidated, transactionID)
	return nil
}

// --- Stub AccountNumberGenerator ---

// stubNumberGenerator replays a fixed candidate sequence.
type stubNumberGenerator struct {
	sequence []string
	index    int
}

func (g *stubNumberGenerator) Next() string {
	candidate := g.sequence[g.index]
	g.index++
	return candidate
}
