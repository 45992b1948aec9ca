package services_test

import (
	"context"
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

// MockTripRepository is a mock type for the TripRepository interface
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) CompleteTripWithEntries(ctx context.Context, trip domain.Trip, entries []domain.Transaction) error {
	args := m.Called(ctx, trip, entries)
	return args.Error(0)
}

func (m *MockTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

type TripServiceTestSuite struct {
	suite.Suite
	mockTripRepo    *MockTripRepository
	mockVehicleRepo *MockVehicleRepository
	service         portssvc.TripSvcFacade
}

func (suite *TripServiceTestSuite) SetupTest() {
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockVehicleRepo = new(MockVehicleRepository)
	suite.service = services.NewTripService(suite.mockTripRepo, suite.mockVehicleRepo)
}

func (suite *TripServiceTestSuite) inProgressTrip() *domain.Trip {
	return &domain.Trip{
		TripID:        "t1",
		VehicleID:     "v1",
		DriverID:      "d1",
		CustomerID:    "c1",
		Status:        domain.TripInProgress,
		StartLocation: "São Paulo",
		StartKm:       100000,
		StartDate:     time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *TripServiceTestSuite) TestCreateTrip_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTripRequest{
		VehicleID:     "v1",
		DriverID:      "d1",
		StartLocation: "São Paulo",
		StartKm:       100000,
		StartDate:     time.Now(),
	}

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "v1").Return(&domain.Vehicle{VehicleID: "v1"}, nil).Once()
	suite.mockTripRepo.On("SaveTrip", ctx, mock.MatchedBy(func(t domain.Trip) bool {
		return t.Status == domain.TripInProgress && t.FreightAmount.IsZero()
	})).Return(nil).Once()

	trip, err := suite.service.CreateTrip(ctx, req, userID)

	suite.Require().NoError(err)
	suite.NotEmpty(trip.TripID)
	suite.Equal(domain.TripInProgress, trip.Status)
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestCreateTrip_UnknownVehicle() {
	ctx := context.Background()
	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	trip, err := suite.service.CreateTrip(ctx, dto.CreateTripRequest{VehicleID: "nope"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(trip)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "SaveTrip")
}

func (suite *TripServiceTestSuite) TestCompleteTrip_PostsEntriesWithCommission() {
	ctx := context.Background()
	userID := uuid.NewString()
	endDate := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	suite.mockTripRepo.On("FindTripByID", ctx, "t1").Return(suite.inProgressTrip(), nil).Once()

	var captured []domain.Transaction
	suite.mockTripRepo.On("CompleteTripWithEntries", ctx, mock.AnythingOfType("domain.Trip"), mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).([]domain.Transaction)
		}).Return(nil).Once()

	req := dto.CompleteTripRequest{
		EndLocation:         "Curitiba",
		EndKm:               100800,
		EndDate:             endDate,
		FreightAmount:       decimal.NewFromInt(5000),
		ExtraExpensesAmount: decimal.NewFromInt(300),
		FuelAmount:          decimal.NewFromInt(1200),
		PayCommission:       true,
	}

	trip, err := suite.service.CompleteTrip(ctx, "t1", req, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TripCompleted, trip.Status)
	suite.True(decimal.NewFromInt(500).Equal(trip.CommissionAmount), "commission is 10%% of freight, got %s", trip.CommissionAmount)

	suite.Require().Len(captured, 3)
	suite.Equal(domain.TransactionIncome, captured[0].Type)
	suite.Equal(domain.CategoryFreight, captured[0].Category)
	suite.Equal("Frete São Paulo → Curitiba", captured[0].Description)
	suite.Equal(domain.CategoryTripExpense, captured[1].Category)
	suite.Equal(domain.CategoryCommission, captured[2].Category)
	suite.True(decimal.NewFromInt(500).Equal(captured[2].Amount))
	for _, entry := range captured {
		suite.Equal(domain.TransactionPending, entry.Status)
		suite.Equal("t1", entry.TripID)
		suite.Equal(endDate, entry.DueDate)
	}
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestCompleteTrip_NoCommissionWhenNotPaid() {
	ctx := context.Background()

	suite.mockTripRepo.On("FindTripByID", ctx, "t1").Return(suite.inProgressTrip(), nil).Once()

	var captured []domain.Transaction
	suite.mockTripRepo.On("CompleteTripWithEntries", ctx, mock.AnythingOfType("domain.Trip"), mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).([]domain.Transaction)
		}).Return(nil).Once()

	req := dto.CompleteTripRequest{
		EndLocation:   "Curitiba",
		EndKm:         100800,
		EndDate:       time.Now(),
		FreightAmount: decimal.NewFromInt(5000),
	}

	trip, err := suite.service.CompleteTrip(ctx, "t1", req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(trip.CommissionAmount.IsZero())
	suite.Require().Len(captured, 1)
	suite.Equal(domain.CategoryFreight, captured[0].Category)
}

func (suite *TripServiceTestSuite) TestCompleteTrip_AlreadyCompleted() {
	ctx := context.Background()
	trip := suite.inProgressTrip()
	trip.Status = domain.TripCompleted

	suite.mockTripRepo.On("FindTripByID", ctx, "t1").Return(trip, nil).Once()

	_, err := suite.service.CompleteTrip(ctx, "t1", dto.CompleteTripRequest{EndLocation: "X", EndKm: 100001, EndDate: time.Now()}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "CompleteTripWithEntries")
}

func (suite *TripServiceTestSuite) TestCompleteTrip_EndKmBeforeStartKm() {
	ctx := context.Background()
	suite.mockTripRepo.On("FindTripByID", ctx, "t1").Return(suite.inProgressTrip(), nil).Once()

	_, err := suite.service.CompleteTrip(ctx, "t1", dto.CompleteTripRequest{EndLocation: "X", EndKm: 99999, EndDate: time.Now()}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTripServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TripServiceTestSuite))
}
