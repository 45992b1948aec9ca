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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockChecklistRepository is a mock type for the ChecklistRepository interface
type MockChecklistRepository struct {
	mock.Mock
}

func (m *MockChecklistRepository) SaveChecklist(ctx context.Context, checklist domain.Checklist) error {
	args := m.Called(ctx, checklist)
	return args.Error(0)
}

func (m *MockChecklistRepository) FindChecklistByID(ctx context.Context, checklistID string) (*domain.Checklist, error) {
	args := m.Called(ctx, checklistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checklist), args.Error(1)
}

func (m *MockChecklistRepository) ListChecklists(ctx context.Context) ([]domain.Checklist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checklist), args.Error(1)
}

func (m *MockChecklistRepository) ListChecklistsByVehicle(ctx context.Context, vehicleID string) ([]domain.Checklist, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checklist), args.Error(1)
}

func (m *MockChecklistRepository) UpdateChecklistStatus(ctx context.Context, checklistID string, status domain.ChecklistStatus, updatedBy string) error {
	args := m.Called(ctx, checklistID, status, updatedBy)
	return args.Error(0)
}

func (m *MockChecklistRepository) DeleteChecklist(ctx context.Context, checklistID string) error {
	args := m.Called(ctx, checklistID)
	return args.Error(0)
}

func (m *MockChecklistRepository) SaveCorrectiveAction(ctx context.Context, action domain.CorrectiveAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockChecklistRepository) FindCorrectiveActionByID(ctx context.Context, actionID string) (*domain.CorrectiveAction, error) {
	args := m.Called(ctx, actionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CorrectiveAction), args.Error(1)
}

func (m *MockChecklistRepository) ListCorrectiveActionsByChecklist(ctx context.Context, checklistID string) ([]domain.CorrectiveAction, error) {
	args := m.Called(ctx, checklistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CorrectiveAction), args.Error(1)
}

func (m *MockChecklistRepository) UpdateCorrectiveAction(ctx context.Context, action domain.CorrectiveAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockChecklistRepository) ListDefinitionsByType(ctx context.Context, checklistType domain.ChecklistType) ([]domain.ChecklistDefinition, error) {
	args := m.Called(ctx, checklistType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChecklistDefinition), args.Error(1)
}

func (m *MockChecklistRepository) SaveDefinition(ctx context.Context, definition domain.ChecklistDefinition) error {
	args := m.Called(ctx, definition)
	return args.Error(0)
}

type ChecklistServiceTestSuite struct {
	suite.Suite
	mockChecklistRepo *MockChecklistRepository
	mockVehicleRepo   *MockVehicleRepository
	service           portssvc.ChecklistSvcFacade
}

func (suite *ChecklistServiceTestSuite) SetupTest() {
	suite.mockChecklistRepo = new(MockChecklistRepository)
	suite.mockVehicleRepo = new(MockVehicleRepository)
	suite.service = services.NewChecklistService(suite.mockChecklistRepo, suite.mockVehicleRepo)
}

func (suite *ChecklistServiceTestSuite) problemChecklist() *domain.Checklist {
	return &domain.Checklist{
		ChecklistID: "c1",
		VehicleID:   "v1",
		Type:        domain.ChecklistMaintenance,
		Status:      domain.ChecklistProblem,
		Items: []domain.ChecklistItem{
			{ItemID: "i1", Label: "Freios", Status: domain.ItemProblem},
			{ItemID: "i2", Label: "Luzes e sinalização", Status: domain.ItemOK},
		},
	}
}

func (suite *ChecklistServiceTestSuite) TestCreateChecklist_DerivesProblemStatus() {
	ctx := context.Background()
	req := dto.CreateChecklistRequest{
		VehicleID: "v1",
		Date:      time.Now(),
		Type:      domain.ChecklistMaintenance,
		Items: []dto.ChecklistItemInput{
			{Label: "Freios", Status: domain.ItemProblem, Comment: "Pastilha gasta"},
			{Label: "Luzes e sinalização", Status: domain.ItemOK},
		},
	}

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "v1").Return(&domain.Vehicle{VehicleID: "v1"}, nil).Once()
	suite.mockChecklistRepo.On("SaveChecklist", ctx, mock.MatchedBy(func(c domain.Checklist) bool {
		return c.Status == domain.ChecklistProblem && len(c.Items) == 2
	})).Return(nil).Once()

	checklist, err := suite.service.CreateChecklist(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.ChecklistProblem, checklist.Status)
	suite.NotEmpty(checklist.Items[0].ItemID)
	suite.mockChecklistRepo.AssertExpectations(suite.T())
}

func (suite *ChecklistServiceTestSuite) TestCreateChecklist_AllOK() {
	ctx := context.Background()
	req := dto.CreateChecklistRequest{
		VehicleID: "v1",
		Date:      time.Now(),
		Type:      domain.ChecklistLoading,
		Items: []dto.ChecklistItemInput{
			{Label: "Amarração da carga", Status: domain.ItemOK},
		},
	}

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "v1").Return(&domain.Vehicle{VehicleID: "v1"}, nil).Once()
	suite.mockChecklistRepo.On("SaveChecklist", ctx, mock.MatchedBy(func(c domain.Checklist) bool {
		return c.Status == domain.ChecklistOK
	})).Return(nil).Once()

	checklist, err := suite.service.CreateChecklist(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.ChecklistOK, checklist.Status)
}

func (suite *ChecklistServiceTestSuite) TestCreateChecklist_UnknownVehicle() {
	ctx := context.Background()
	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateChecklist(ctx, dto.CreateChecklistRequest{VehicleID: "nope"}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockChecklistRepo.AssertNotCalled(suite.T(), "SaveChecklist")
}

func (suite *ChecklistServiceTestSuite) TestCreateCorrectiveAction_MovesStatusToCorrected() {
	ctx := context.Background()
	req := dto.CreateCorrectiveActionRequest{
		ChecklistID: "c1",
		ItemID:      "i1",
		CorrectedBy: "Mecânico João",
		ActionTaken: "Troca das pastilhas de freio",
	}

	suite.mockChecklistRepo.On("FindChecklistByID", ctx, "c1").Return(suite.problemChecklist(), nil).Once()
	suite.mockChecklistRepo.On("SaveCorrectiveAction", ctx, mock.MatchedBy(func(a domain.CorrectiveAction) bool {
		return a.ChecklistID == "c1" && a.ItemID == "i1" && !a.Verified
	})).Return(nil).Once()
	suite.mockChecklistRepo.On("ListCorrectiveActionsByChecklist", ctx, "c1").
		Return([]domain.CorrectiveAction{{ChecklistID: "c1", ItemID: "i1", Verified: false}}, nil).Once()
	suite.mockChecklistRepo.On("UpdateChecklistStatus", ctx, "c1", domain.ChecklistCorrected, mock.AnythingOfType("string")).Return(nil).Once()

	action, err := suite.service.CreateCorrectiveAction(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(action.ActionID)
	suite.mockChecklistRepo.AssertExpectations(suite.T())
}

func (suite *ChecklistServiceTestSuite) TestCreateCorrectiveAction_ItemNotInChecklist() {
	ctx := context.Background()
	suite.mockChecklistRepo.On("FindChecklistByID", ctx, "c1").Return(suite.problemChecklist(), nil).Once()

	_, err := suite.service.CreateCorrectiveAction(ctx, dto.CreateCorrectiveActionRequest{
		ChecklistID: "c1", ItemID: "ghost", CorrectedBy: "x", ActionTaken: "y",
	}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockChecklistRepo.AssertNotCalled(suite.T(), "SaveCorrectiveAction")
}

func (suite *ChecklistServiceTestSuite) TestCreateCorrectiveAction_ItemHasNoProblem() {
	ctx := context.Background()
	suite.mockChecklistRepo.On("FindChecklistByID", ctx, "c1").Return(suite.problemChecklist(), nil).Once()

	_, err := suite.service.CreateCorrectiveAction(ctx, dto.CreateCorrectiveActionRequest{
		ChecklistID: "c1", ItemID: "i2", CorrectedBy: "x", ActionTaken: "y",
	}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockChecklistRepo.AssertNotCalled(suite.T(), "SaveCorrectiveAction")
}

func (suite *ChecklistServiceTestSuite) TestVerifyCorrectiveAction_RecomputesToOK() {
	ctx := context.Background()
	action := &domain.CorrectiveAction{
		ActionID:    "a1",
		ChecklistID: "c1",
		ItemID:      "i1",
		Verified:    false,
	}

	suite.mockChecklistRepo.On("FindCorrectiveActionByID", ctx, "a1").Return(action, nil).Once()
	suite.mockChecklistRepo.On("UpdateCorrectiveAction", ctx, mock.MatchedBy(func(a domain.CorrectiveAction) bool {
		return a.Verified && a.VerifiedBy == "Gestor Ana" && a.VerifiedAt != nil
	})).Return(nil).Once()
	suite.mockChecklistRepo.On("FindChecklistByID", ctx, "c1").Return(suite.problemChecklist(), nil).Once()
	suite.mockChecklistRepo.On("ListCorrectiveActionsByChecklist", ctx, "c1").
		Return([]domain.CorrectiveAction{{ChecklistID: "c1", ItemID: "i1", Verified: true}}, nil).Once()
	suite.mockChecklistRepo.On("UpdateChecklistStatus", ctx, "c1", domain.ChecklistOK, mock.AnythingOfType("string")).Return(nil).Once()

	verified, err := suite.service.VerifyCorrectiveAction(ctx, "a1", dto.VerifyCorrectiveActionRequest{VerifiedBy: "Gestor Ana"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(verified.Verified)
	suite.mockChecklistRepo.AssertExpectations(suite.T())
}

func (suite *ChecklistServiceTestSuite) TestVerifyCorrectiveAction_AlreadyVerified() {
	ctx := context.Background()
	action := &domain.CorrectiveAction{ActionID: "a1", ChecklistID: "c1", ItemID: "i1", Verified: true}

	suite.mockChecklistRepo.On("FindCorrectiveActionByID", ctx, "a1").Return(action, nil).Once()

	_, err := suite.service.VerifyCorrectiveAction(ctx, "a1", dto.VerifyCorrectiveActionRequest{VerifiedBy: "x"}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockChecklistRepo.AssertNotCalled(suite.T(), "UpdateCorrectiveAction")
}

func (suite *ChecklistServiceTestSuite) TestVerifyCorrectiveAction_StatusUnchangedSkipsUpdate() {
	ctx := context.Background()
	action := &domain.CorrectiveAction{ActionID: "a1", ChecklistID: "c1", ItemID: "i1", Verified: false}
	checklist := suite.problemChecklist()
	checklist.Status = domain.ChecklistOK
	checklist.Items[0].Status = domain.ItemOK

	suite.mockChecklistRepo.On("FindCorrectiveActionByID", ctx, "a1").Return(action, nil).Once()
	suite.mockChecklistRepo.On("UpdateCorrectiveAction", ctx, mock.AnythingOfType("domain.CorrectiveAction")).Return(nil).Once()
	suite.mockChecklistRepo.On("FindChecklistByID", ctx, "c1").Return(checklist, nil).Once()
	suite.mockChecklistRepo.On("ListCorrectiveActionsByChecklist", ctx, "c1").
		Return([]domain.CorrectiveAction{}, nil).Once()

	_, err := suite.service.VerifyCorrectiveAction(ctx, "a1", dto.VerifyCorrectiveActionRequest{VerifiedBy: "x"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockChecklistRepo.AssertNotCalled(suite.T(), "UpdateChecklistStatus")
}

func TestChecklistServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChecklistServiceTestSuite))
}
