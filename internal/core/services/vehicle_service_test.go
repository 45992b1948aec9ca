package services_test

import (
	"context"
	"testing"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/frotaops/frota_backend/internal/core/services"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockVehicleRepository is a mock type for the VehicleRepository interface
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

type VehicleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVehicleRepository
	service  portssvc.VehicleSvcFacade
}

func (suite *VehicleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVehicleRepository)
	suite.service = services.NewVehicleService(suite.mockRepo)
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_Truck() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateVehicleRequest{
		VehicleType:     domain.VehicleTruck,
		Plate:           "ABC1D23",
		Model:           "Scania R450",
		CurrentKm:       120000,
		NextOilChangeKm: 130000,
	}

	suite.mockRepo.On("SaveVehicle", ctx, mock.AnythingOfType("domain.Vehicle")).Return(nil).Once()

	vehicle, err := suite.service.CreateVehicle(ctx, req, userID)

	suite.Require().NoError(err)
	suite.NotEmpty(vehicle.VehicleID)
	suite.Equal(domain.VehicleTruck, vehicle.VehicleType)
	suite.Equal("Scania R450", vehicle.Model)
	suite.Equal(int64(120000), vehicle.CurrentKm)
	suite.Equal(userID, vehicle.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_TruckWithoutModel() {
	ctx := context.Background()
	req := dto.CreateVehicleRequest{
		VehicleType: domain.VehicleTruck,
		Plate:       "ABC1D23",
	}

	vehicle, err := suite.service.CreateVehicle(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(vehicle)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveVehicle")
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_TrailerWithoutAxles() {
	ctx := context.Background()
	req := dto.CreateVehicleRequest{
		VehicleType: domain.VehicleTrailer,
		Plate:       "XYZ9K88",
	}

	vehicle, err := suite.service.CreateVehicle(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(vehicle)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_UnknownType() {
	ctx := context.Background()
	req := dto.CreateVehicleRequest{
		VehicleType: domain.VehicleType("MOTORCYCLE"),
		Plate:       "ZZZ0Z00",
	}

	_, err := suite.service.CreateVehicle(ctx, req, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VehicleServiceTestSuite) TestUpdateTruckKm_Advances() {
	ctx := context.Background()
	truck := &domain.Vehicle{
		VehicleID:   "v1",
		VehicleType: domain.VehicleTruck,
		Plate:       "ABC1D23",
		CurrentKm:   100000,
	}

	suite.mockRepo.On("FindVehicleByID", ctx, "v1").Return(truck, nil).Once()
	suite.mockRepo.On("UpdateVehicle", ctx, mock.MatchedBy(func(v domain.Vehicle) bool {
		return v.CurrentKm == 105000
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTruckKm(ctx, "v1", 105000, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(int64(105000), updated.CurrentKm)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VehicleServiceTestSuite) TestUpdateTruckKm_RejectsBackwards() {
	ctx := context.Background()
	truck := &domain.Vehicle{
		VehicleID:   "v1",
		VehicleType: domain.VehicleTruck,
		CurrentKm:   100000,
	}

	suite.mockRepo.On("FindVehicleByID", ctx, "v1").Return(truck, nil).Once()

	_, err := suite.service.UpdateTruckKm(ctx, "v1", 99999, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateVehicle")
}

func (suite *VehicleServiceTestSuite) TestUpdateTruckKm_RejectsTrailer() {
	ctx := context.Background()
	trailer := &domain.Vehicle{
		VehicleID:   "v2",
		VehicleType: domain.VehicleTrailer,
		Axles:       3,
	}

	suite.mockRepo.On("FindVehicleByID", ctx, "v2").Return(trailer, nil).Once()

	_, err := suite.service.UpdateTruckKm(ctx, "v2", 1000, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestVehicleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}
