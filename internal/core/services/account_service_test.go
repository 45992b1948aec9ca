package services_test

import (
	"context"
	"testing"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/core/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.FinancialAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.FinancialAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.FinancialAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:           "Caixa da empresa",
		Kind:           domain.AccountCash,
		InitialBalance: decimal.NewFromInt(5000),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.FinancialAccount) bool {
		return a.Name == "Caixa da empresa" && a.Kind == domain.AccountCash
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, userID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.True(decimal.NewFromInt(5000).Equal(account.InitialBalance))
	suite.Equal(userID, account.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialUpdate() {
	ctx := context.Background()
	stored := &domain.FinancialAccount{
		AccountID:      "a1",
		Name:           "Banco",
		Kind:           domain.AccountBank,
		InitialBalance: decimal.NewFromInt(100),
	}
	newName := "Banco principal"

	suite.mockRepo.On("FindAccountByID", ctx, "a1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.FinancialAccount) bool {
		return a.Name == "Banco principal" && decimal.NewFromInt(100).Equal(a.InitialBalance)
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "a1", dto.UpdateAccountRequest{Name: &newName}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("Banco principal", account.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
