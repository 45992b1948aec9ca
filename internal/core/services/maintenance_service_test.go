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

// MockMaintenanceRepository is a mock type for the MaintenanceRepository interface
type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) SaveTask(ctx context.Context, task domain.MaintenanceTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.MaintenanceTask, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceTask), args.Error(1)
}

func (m *MockMaintenanceRepository) ListTasks(ctx context.Context) ([]domain.MaintenanceTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceTask), args.Error(1)
}

func (m *MockMaintenanceRepository) ListPendingTasks(ctx context.Context) ([]domain.MaintenanceTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceTask), args.Error(1)
}

func (m *MockMaintenanceRepository) UpdateTask(ctx context.Context, task domain.MaintenanceTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) MarkDoneWithExpense(ctx context.Context, task domain.MaintenanceTask, txn *domain.Transaction) error {
	args := m.Called(ctx, task, txn)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

type MaintenanceServiceTestSuite struct {
	suite.Suite
	mockMaintenanceRepo *MockMaintenanceRepository
	mockVehicleRepo     *MockVehicleRepository
	service             portssvc.MaintenanceSvcFacade
}

func (suite *MaintenanceServiceTestSuite) SetupTest() {
	suite.mockMaintenanceRepo = new(MockMaintenanceRepository)
	suite.mockVehicleRepo = new(MockVehicleRepository)
	suite.service = services.NewMaintenanceService(suite.mockMaintenanceRepo, suite.mockVehicleRepo)
}

func (suite *MaintenanceServiceTestSuite) pendingTask() *domain.MaintenanceTask {
	cost := decimal.NewFromInt(800)
	return &domain.MaintenanceTask{
		TaskID:      "t1",
		VehicleID:   "v1",
		Description: "Troca de embreagem",
		Priority:    domain.PriorityHigh,
		Cost:        &cost,
		Status:      domain.TaskPending,
	}
}

func (suite *MaintenanceServiceTestSuite) TestCreateTask_Success() {
	ctx := context.Background()
	req := dto.CreateMaintenanceTaskRequest{
		VehicleID:   "v1",
		Description: "Troca de embreagem",
		Priority:    domain.PriorityHigh,
	}

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "v1").Return(&domain.Vehicle{VehicleID: "v1"}, nil).Once()
	suite.mockMaintenanceRepo.On("SaveTask", ctx, mock.MatchedBy(func(t domain.MaintenanceTask) bool {
		return t.Status == domain.TaskPending && t.VehicleID == "v1"
	})).Return(nil).Once()

	task, err := suite.service.CreateTask(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(task.TaskID)
	suite.Equal(domain.TaskPending, task.Status)
}

func (suite *MaintenanceServiceTestSuite) TestCreateTask_UnknownVehicle() {
	ctx := context.Background()
	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTask(ctx, dto.CreateMaintenanceTaskRequest{VehicleID: "nope"}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMaintenanceRepo.AssertNotCalled(suite.T(), "SaveTask")
}

func (suite *MaintenanceServiceTestSuite) TestCompleteTask_ConvertsCostToExpense() {
	ctx := context.Background()

	suite.mockMaintenanceRepo.On("FindTaskByID", ctx, "t1").Return(suite.pendingTask(), nil).Once()

	var capturedTask domain.MaintenanceTask
	var capturedTxn *domain.Transaction
	suite.mockMaintenanceRepo.On("MarkDoneWithExpense", ctx, mock.AnythingOfType("domain.MaintenanceTask"), mock.AnythingOfType("*domain.Transaction")).
		Run(func(args mock.Arguments) {
			capturedTask = args.Get(1).(domain.MaintenanceTask)
			capturedTxn = args.Get(2).(*domain.Transaction)
		}).Return(nil).Once()

	req := dto.CompleteMaintenanceTaskRequest{ConvertToExpense: true, AccountID: "a1", SupplierID: "s1"}
	task, err := suite.service.CompleteTask(ctx, "t1", req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.TaskDone, task.Status)
	suite.Require().NotNil(capturedTxn)
	suite.Equal(domain.TransactionExpense, capturedTxn.Type)
	suite.Equal(domain.TransactionPending, capturedTxn.Status)
	suite.Equal(domain.CategoryMaintenance, capturedTxn.Category)
	suite.True(decimal.NewFromInt(800).Equal(capturedTxn.Amount))
	suite.Equal("Troca de embreagem", capturedTxn.Description)
	suite.Equal("v1", capturedTxn.VehicleID)
	suite.Equal("s1", capturedTxn.SupplierID)
	suite.Equal(capturedTxn.TransactionID, capturedTask.TransactionID)
}

func (suite *MaintenanceServiceTestSuite) TestCompleteTask_NoExpenseWithoutConversion() {
	ctx := context.Background()

	suite.mockMaintenanceRepo.On("FindTaskByID", ctx, "t1").Return(suite.pendingTask(), nil).Once()
	suite.mockMaintenanceRepo.On("MarkDoneWithExpense", ctx, mock.MatchedBy(func(t domain.MaintenanceTask) bool {
		return t.Status == domain.TaskDone && t.TransactionID == ""
	}), (*domain.Transaction)(nil)).Return(nil).Once()

	task, err := suite.service.CompleteTask(ctx, "t1", dto.CompleteMaintenanceTaskRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.TaskDone, task.Status)
	suite.mockMaintenanceRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestCompleteTask_ConversionRequiresCost() {
	ctx := context.Background()
	task := suite.pendingTask()
	task.Cost = nil

	suite.mockMaintenanceRepo.On("FindTaskByID", ctx, "t1").Return(task, nil).Once()

	_, err := suite.service.CompleteTask(ctx, "t1", dto.CompleteMaintenanceTaskRequest{ConvertToExpense: true}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMaintenanceRepo.AssertNotCalled(suite.T(), "MarkDoneWithExpense")
}

func (suite *MaintenanceServiceTestSuite) TestCompleteTask_NotPending() {
	ctx := context.Background()
	task := suite.pendingTask()
	task.Status = domain.TaskDone

	suite.mockMaintenanceRepo.On("FindTaskByID", ctx, "t1").Return(task, nil).Once()

	_, err := suite.service.CompleteTask(ctx, "t1", dto.CompleteMaintenanceTaskRequest{}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MaintenanceServiceTestSuite) TestUpdateTask_RejectsDoneTask() {
	ctx := context.Background()
	task := suite.pendingTask()
	task.Status = domain.TaskDone

	suite.mockMaintenanceRepo.On("FindTaskByID", ctx, "t1").Return(task, nil).Once()

	desc := "Nova descrição"
	_, err := suite.service.UpdateTask(ctx, "t1", dto.UpdateMaintenanceTaskRequest{Description: &desc}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMaintenanceRepo.AssertNotCalled(suite.T(), "UpdateTask")
}

func (suite *MaintenanceServiceTestSuite) TestListAlerts_MergesSources() {
	ctx := context.Background()
	vehicles := []domain.Vehicle{
		{VehicleID: "v1", VehicleType: domain.VehicleTruck, Plate: "AAA1A11", CurrentKm: 99000, NextOilChangeKm: 100000},
	}
	tasks := []domain.MaintenanceTask{
		{TaskID: "t1", VehicleID: "v1", Description: "Trocar pastilhas", Priority: domain.PriorityHigh, Status: domain.TaskPending},
	}

	suite.mockVehicleRepo.On("ListVehicles", ctx).Return(vehicles, nil).Once()
	suite.mockMaintenanceRepo.On("ListPendingTasks", ctx).Return(tasks, nil).Once()

	alerts, err := suite.service.ListAlerts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(alerts, 2)
	suite.Equal(domain.AlertUrgent, alerts[0].Severity)
}

func TestMaintenanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}
