package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

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

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DefaultsToPending() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.TransactionExpense,
		Amount:      decimal.NewFromInt(100),
		Description: "Pedágio",
		Category:    domain.CategoryGeneral,
		DueDate:     time.Now(),
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionPending, txn.Status)
	suite.Nil(txn.PaymentDate)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PaidGetsPaymentDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.TransactionIncome,
		Status:      domain.TransactionPaid,
		Amount:      decimal.NewFromInt(100),
		Description: "Frete avulso",
		Category:    domain.CategoryFreight,
		DueDate:     time.Now(),
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionPaid, txn.Status)
	suite.Require().NotNil(txn.PaymentDate)
	suite.WithinDuration(time.Now(), *txn.PaymentDate, time.Second)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.TransactionExpense,
		Amount:      decimal.Zero,
		Description: "Nada",
		Category:    domain.CategoryGeneral,
		DueDate:     time.Now(),
	}

	_, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateInstallments_SplitsEvenlyLastAbsorbsRemainder() {
	ctx := context.Background()
	base := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	req := dto.CreateInstallmentsRequest{
		CreateTransactionRequest: dto.CreateTransactionRequest{
			Type:        domain.TransactionExpense,
			Amount:      decimal.NewFromInt(100),
			Description: "Pneus novos",
			Category:    domain.CategoryMaintenance,
			DueDate:     base,
		},
		Installments: 3,
	}

	var captured []domain.Transaction
	suite.mockRepo.On("SaveTransactions", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]domain.Transaction)
		}).Return(nil).Once()

	txns, err := suite.service.CreateInstallments(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(txns, 3)
	suite.Require().Len(captured, 3)

	suite.True(decimal.RequireFromString("33.33").Equal(txns[0].Amount), "got %s", txns[0].Amount)
	suite.True(decimal.RequireFromString("33.33").Equal(txns[1].Amount))
	suite.True(decimal.RequireFromString("33.34").Equal(txns[2].Amount), "got %s", txns[2].Amount)

	total := decimal.Zero
	for i, txn := range txns {
		total = total.Add(txn.Amount)
		suite.Equal(domain.TransactionPending, txn.Status)
		suite.Nil(txn.PaymentDate)
		suite.Equal(fmt.Sprintf("Pneus novos (%d/3)", i+1), txn.Description)
		suite.Equal(base.AddDate(0, i, 0), txn.DueDate)
	}
	suite.True(decimal.NewFromInt(100).Equal(total), "installments must sum to the original amount, got %s", total)
}

func (suite *TransactionServiceTestSuite) TestPayTransaction_OnlyPending() {
	ctx := context.Background()
	paid := &domain.Transaction{TransactionID: "tx1", Status: domain.TransactionPaid}

	suite.mockRepo.On("FindTransactionByID", ctx, "tx1").Return(paid, nil).Once()

	_, err := suite.service.PayTransaction(ctx, "tx1", dto.PayTransactionRequest{}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction")
}

func (suite *TransactionServiceTestSuite) TestPayTransaction_DefaultsPaymentDate() {
	ctx := context.Background()
	pending := &domain.Transaction{TransactionID: "tx1", Status: domain.TransactionPending, Amount: decimal.NewFromInt(50)}

	suite.mockRepo.On("FindTransactionByID", ctx, "tx1").Return(pending, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Status == domain.TransactionPaid && txn.PaymentDate != nil && txn.AccountID == "a1"
	})).Return(nil).Once()

	txn, err := suite.service.PayTransaction(ctx, "tx1", dto.PayTransactionRequest{AccountID: "a1"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionPaid, txn.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ClearsPaymentDateWhenUnpaid() {
	ctx := context.Background()
	now := time.Now()
	paid := &domain.Transaction{TransactionID: "tx1", Status: domain.TransactionPaid, Amount: decimal.NewFromInt(50), PaymentDate: &now}
	newStatus := domain.TransactionPending

	suite.mockRepo.On("FindTransactionByID", ctx, "tx1").Return(paid, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Status == domain.TransactionPending && txn.PaymentDate == nil
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, "tx1", dto.UpdateTransactionRequest{Status: &newStatus}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(txn.PaymentDate)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
