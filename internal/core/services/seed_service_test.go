package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hanjoon-dev/account_manager_app/internal/apperrors"
	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	"github.com/hanjoon-dev/account_manager_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SeedServiceTestSuite struct {
	suite.Suite
	mockClientRepo  *MockClientRepository
	mockAccountRepo *MockAccountRepository
	service         *services.SeedService
	logger          *slog.Logger
}

func (suite *SeedServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewSeedService(suite.mockClientRepo, suite.mockAccountRepo)
	suite.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (suite *SeedServiceTestSuite) TestSeedDemoData_FreshDatabase() {
	ctx := context.Background()

	suite.mockClientRepo.On("FindClientByUsername", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Times(3)
	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Times(3)

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Times(11)

	err := suite.service.SeedDemoData(ctx, suite.logger)

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SeedServiceTestSuite) TestSeedDemoData_ExistingClientsSkipped() {
	ctx := context.Background()
	existing := &domain.Client{ClientID: "id", Username: "any", CreatedAt: time.Now()}

	suite.mockClientRepo.On("FindClientByUsername", ctx, mock.AnythingOfType("string")).Return(existing, nil).Times(3)

	err := suite.service.SeedDemoData(ctx, suite.logger)

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *SeedServiceTestSuite) TestSeedDemoData_AccountShape() {
	ctx := context.Background()

	suite.mockClientRepo.On("FindClientByUsername", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Times(3)

	var savedClients []domain.Client
	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).
		Run(func(args mock.Arguments) { savedClients = append(savedClients, args.Get(1).(domain.Client)) }).
		Return(nil).Times(3)

	var savedAccounts []domain.Account
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) { savedAccounts = append(savedAccounts, args.Get(1).(domain.Account)) }).
		Return(nil).Times(11)

	err := suite.service.SeedDemoData(ctx, suite.logger)

	suite.Require().NoError(err)
	suite.Require().Len(savedClients, 3)
	suite.Require().Len(savedAccounts, 11)

	// clientWithOneAccount owns the first fixed number with a spendable balance.
	suite.Equal("1000000000", savedAccounts[0].AccountNumber)
	suite.Equal(int64(10_000), savedAccounts[0].Balance)
	suite.Equal(savedClients[1].ClientID, savedAccounts[0].ClientID)

	// clientWithTenAccount owns 1000000001..1000000010; the first four funded.
	for i, acc := range savedAccounts[1:] {
		suite.Equal(savedClients[2].ClientID, acc.ClientID)
		suite.Equal(domain.AccountStatusActive, acc.Status)
		if i < 4 {
			suite.Equal(int64(10_000), acc.Balance)
		} else {
			suite.Equal(int64(0), acc.Balance)
		}
	}
	suite.Equal("1000000001", savedAccounts[1].AccountNumber)
	suite.Equal("1000000010", savedAccounts[10].AccountNumber)
}

// Run the test suite
func TestSeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeedServiceTestSuite))
}
