package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/core/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockFuelEntryRepository is a mock type for the FuelEntryRepository interface
type MockFuelEntryRepository struct {
	mock.Mock
}

func (m *MockFuelEntryRepository) SaveFuelEntry(ctx context.Context, entry domain.FuelEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFuelEntryRepository) SaveFuelEntryWithTransaction(ctx context.Context, entry domain.FuelEntry, txn *domain.Transaction, truckKmUpdate *portsrepo.TruckKmUpdate) error {
	args := m.Called(ctx, entry, txn, truckKmUpdate)
	return args.Error(0)
}

func (m *MockFuelEntryRepository) ListFuelEntries(ctx context.Context) ([]domain.FuelEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FuelEntry), args.Error(1)
}

func (m *MockFuelEntryRepository) ListFuelEntriesByVehicle(ctx context.Context, vehicleID string) ([]domain.FuelEntry, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FuelEntry), args.Error(1)
}

func (m *MockFuelEntryRepository) DeleteFuelEntry(ctx context.Context, fuelEntryID string) error {
	args := m.Called(ctx, fuelEntryID)
	return args.Error(0)
}

type FuelServiceTestSuite struct {
	suite.Suite
	mockFuelRepo    *MockFuelEntryRepository
	mockVehicleRepo *MockVehicleRepository
	service         portssvc.FuelSvcFacade
}

func (suite *FuelServiceTestSuite) SetupTest() {
	suite.mockFuelRepo = new(MockFuelEntryRepository)
	suite.mockVehicleRepo = new(MockVehicleRepository)
	suite.service = services.NewFuelService(suite.mockFuelRepo, suite.mockVehicleRepo)
}

func (suite *FuelServiceTestSuite) truck() *domain.Vehicle {
	return &domain.Vehicle{
		VehicleID:   "v1",
		VehicleType: domain.VehicleTruck,
		Plate:       "ABC1D23",
		CurrentKm:   100000,
	}
}

func (suite *FuelServiceTestSuite) entryRequest() dto.CreateFuelEntryRequest {
	return dto.CreateFuelEntryRequest{
		VehicleID:     "v1",
		Date:          time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
		Liters:        decimal.NewFromInt(400),
		PricePerLiter: decimal.RequireFromString("5.89"),
		TotalCost:     decimal.RequireFromString("2356.00"),
		Mileage:       100500,
		SupplierID:    "s1",
		AccountID:     "a1",
	}
}

func (suite *FuelServiceTestSuite) TestCreateFuelEntry_PostsPaidExpense() {
	ctx := context.Background()
	req := suite.entryRequest()
	req.CreateTransaction = true

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "v1").Return(suite.truck(), nil).Once()

	var capturedEntry domain.FuelEntry
	var capturedTxn *domain.Transaction
	var capturedKm *portsrepo.TruckKmUpdate
	suite.mockFuelRepo.On("SaveFuelEntryWithTransaction", ctx, mock.AnythingOfType("domain.FuelEntry"), mock.AnythingOfType("*domain.Transaction"), mock.AnythingOfType("*repositories.TruckKmUpdate")).
		Run(func(args mock.Arguments) {
			capturedEntry = args.Get(1).(domain.FuelEntry)
			capturedTxn = args.Get(2).(*domain.Transaction)
			capturedKm = args.Get(3).(*portsrepo.TruckKmUpdate)
		}).Return(nil).Once()

	entry, err := suite.service.CreateFuelEntry(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(capturedTxn)
	suite.Equal(domain.TransactionExpense, capturedTxn.Type)
	suite.Equal(domain.TransactionPaid, capturedTxn.Status)
	suite.Equal(domain.CategoryFuel, capturedTxn.Category)
	suite.Equal("Abastecimento ABC1D23", capturedTxn.Description)
	suite.True(req.TotalCost.Equal(capturedTxn.Amount))
	suite.Require().NotNil(capturedTxn.PaymentDate)
	suite.Equal(req.Date, *capturedTxn.PaymentDate)
	suite.Equal(req.Date, capturedTxn.DueDate)
	suite.Equal("a1", capturedTxn.AccountID)
	suite.Equal("s1", capturedTxn.SupplierID)
	suite.Equal(capturedTxn.TransactionID, entry.TransactionID)
	suite.Equal(capturedTxn.TransactionID, capturedEntry.TransactionID)

	suite.Require().NotNil(capturedKm)
	suite.Equal("v1", capturedKm.VehicleID)
	suite.Equal(int64(100500), capturedKm.CurrentKm)
}

func (suite *FuelServiceTestSuite) TestCreateFuelEntry_NoTransactionWhenNotRequested() {
	ctx := context.Background()
	req := suite.entryRequest()

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "v1").Return(suite.truck(), nil).Once()
	suite.mockFuelRepo.On("SaveFuelEntryWithTransaction", ctx, mock.MatchedBy(func(e domain.FuelEntry) bool {
		return e.TransactionID == ""
	}), (*domain.Transaction)(nil), mock.AnythingOfType("*repositories.TruckKmUpdate")).Return(nil).Once()

	entry, err := suite.service.CreateFuelEntry(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Empty(entry.TransactionID)
	suite.mockFuelRepo.AssertExpectations(suite.T())
}

func (suite *FuelServiceTestSuite) TestCreateFuelEntry_MileageBehindOdometerSkipsKmUpdate() {
	ctx := context.Background()
	req := suite.entryRequest()
	req.Mileage = 99000

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "v1").Return(suite.truck(), nil).Once()
	suite.mockFuelRepo.On("SaveFuelEntryWithTransaction", ctx, mock.AnythingOfType("domain.FuelEntry"), (*domain.Transaction)(nil), (*portsrepo.TruckKmUpdate)(nil)).Return(nil).Once()

	_, err := suite.service.CreateFuelEntry(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockFuelRepo.AssertExpectations(suite.T())
}

func (suite *FuelServiceTestSuite) TestCreateFuelEntry_TrailerNeverUpdatesKm() {
	ctx := context.Background()
	trailer := &domain.Vehicle{
		VehicleID:   "v2",
		VehicleType: domain.VehicleTrailer,
		Plate:       "XYZ9K88",
		Axles:       3,
	}
	req := suite.entryRequest()
	req.VehicleID = "v2"

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "v2").Return(trailer, nil).Once()
	suite.mockFuelRepo.On("SaveFuelEntryWithTransaction", ctx, mock.AnythingOfType("domain.FuelEntry"), (*domain.Transaction)(nil), (*portsrepo.TruckKmUpdate)(nil)).Return(nil).Once()

	_, err := suite.service.CreateFuelEntry(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockFuelRepo.AssertExpectations(suite.T())
}

func (suite *FuelServiceTestSuite) TestCreateFuelEntry_UnknownVehicle() {
	ctx := context.Background()
	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	req := suite.entryRequest()
	req.VehicleID = "nope"
	_, err := suite.service.CreateFuelEntry(ctx, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockFuelRepo.AssertNotCalled(suite.T(), "SaveFuelEntryWithTransaction")
}

func TestFuelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FuelServiceTestSuite))
}
