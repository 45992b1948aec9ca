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
	"github.com/frotaops/frota_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockDriverRepository is a mock type for the DriverRepository interface
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) SaveDriver(ctx context.Context, driver domain.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) FindDriverByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindDriverByCPF(ctx context.Context, cpf string) (*domain.Driver, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) UpdateDriver(ctx context.Context, driver domain.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) DeleteDriver(ctx context.Context, driverID string) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

type DriverServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDriverRepository
	service  portssvc.DriverSvcFacade
}

func (suite *DriverServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDriverRepository)
	suite.service = services.NewDriverService(suite.mockRepo)
}

func (suite *DriverServiceTestSuite) TestCreateDriver_HashesPassword() {
	ctx := context.Background()
	req := dto.CreateDriverRequest{
		Name:          "José da Silva",
		CPF:           "12345678901",
		Password:      "segredo123",
		CNHNumber:     "98765432100",
		CNHCategory:   "E",
		CNHExpiration: time.Now().AddDate(2, 0, 0),
	}

	suite.mockRepo.On("SaveDriver", ctx, mock.MatchedBy(func(d domain.Driver) bool {
		return d.PasswordHash != "" && d.PasswordHash != "segredo123"
	})).Return(nil).Once()

	driver, err := suite.service.CreateDriver(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(driver.DriverID)
	suite.True(utils.CheckPasswordHash("segredo123", driver.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DriverServiceTestSuite) TestVerifyCredentials_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("segredo123")
	suite.Require().NoError(err)

	stored := &domain.Driver{DriverID: "d1", CPF: "12345678901", PasswordHash: hash}
	suite.mockRepo.On("FindDriverByCPF", ctx, "12345678901").Return(stored, nil).Once()

	driver, err := suite.service.VerifyCredentials(ctx, "12345678901", "segredo123")

	suite.Require().NoError(err)
	suite.Equal("d1", driver.DriverID)
}

func (suite *DriverServiceTestSuite) TestVerifyCredentials_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("segredo123")
	suite.Require().NoError(err)

	stored := &domain.Driver{DriverID: "d1", CPF: "12345678901", PasswordHash: hash}
	suite.mockRepo.On("FindDriverByCPF", ctx, "12345678901").Return(stored, nil).Once()

	_, err = suite.service.VerifyCredentials(ctx, "12345678901", "errada")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *DriverServiceTestSuite) TestVerifyCredentials_UnknownCPFLooksLikeBadPassword() {
	ctx := context.Background()
	suite.mockRepo.On("FindDriverByCPF", ctx, "00000000000").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.VerifyCredentials(ctx, "00000000000", "tanto-faz")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DriverServiceTestSuite) TestUpdateDriver_RehashesChangedPassword() {
	ctx := context.Background()
	oldHash, err := utils.HashPassword("antiga")
	suite.Require().NoError(err)
	stored := &domain.Driver{DriverID: "d1", Name: "José", PasswordHash: oldHash}
	newPassword := "nova-senha"

	suite.mockRepo.On("FindDriverByID", ctx, "d1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateDriver", ctx, mock.MatchedBy(func(d domain.Driver) bool {
		return utils.CheckPasswordHash("nova-senha", d.PasswordHash)
	})).Return(nil).Once()

	driver, err := suite.service.UpdateDriver(ctx, "d1", dto.UpdateDriverRequest{Password: &newPassword}, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(utils.CheckPasswordHash("antiga", driver.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestDriverServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DriverServiceTestSuite))
}
