package services

import (
	"context"
	"fmt"
	"time"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/utils/fleet"
	"github.com/google/uuid"
)

type checklistService struct {
	checklistRepo portsrepo.ChecklistRepository
	vehicleRepo   portsrepo.VehicleRepository
}

// NewChecklistService creates the checklist and corrective action service.
func NewChecklistService(checklistRepo portsrepo.ChecklistRepository, vehicleRepo portsrepo.VehicleRepository) portssvc.ChecklistSvcFacade {
	return &checklistService{checklistRepo: checklistRepo, vehicleRepo: vehicleRepo}
}

func (s *checklistService) CreateChecklist(ctx context.Context, req dto.CreateChecklistRequest, userID string) (*domain.Checklist, error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, req.VehicleID); err != nil {
		return nil, fmt.Errorf("vehicle %s: %w", req.VehicleID, err)
	}

	items := make([]domain.ChecklistItem, 0, len(req.Items))
	for _, in := range req.Items {
		items = append(items, domain.ChecklistItem{
			ItemID:   uuid.NewString(),
			Label:    in.Label,
			Status:   in.Status,
			Comment:  in.Comment,
			PhotoURL: in.PhotoURL,
		})
	}

	checklist := domain.Checklist{
		ChecklistID: uuid.NewString(),
		VehicleID:   req.VehicleID,
		Date:        req.Date,
		Type:        req.Type,
		Items:       items,
		AuditFields: newAuditFields(userID, time.Now()),
	}
	checklist.Status = fleet.DeriveChecklistStatus(checklist, nil)

	if err := s.checklistRepo.SaveChecklist(ctx, checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

func (s *checklistService) GetChecklistByID(ctx context.Context, checklistID string) (*domain.Checklist, error) {
	return s.checklistRepo.FindChecklistByID(ctx, checklistID)
}

func (s *checklistService) ListChecklists(ctx context.Context) ([]domain.Checklist, error) {
	return s.checklistRepo.ListChecklists(ctx)
}

func (s *checklistService) ListChecklistsByVehicle(ctx context.Context, vehicleID string) ([]domain.Checklist, error) {
	return s.checklistRepo.ListChecklistsByVehicle(ctx, vehicleID)
}

func (s *checklistService) DeleteChecklist(ctx context.Context, checklistID string) error {
	return s.checklistRepo.DeleteChecklist(ctx, checklistID)
}

// recomputeStatus re-derives and persists the checklist status from the
// current corrective action set.
func (s *checklistService) recomputeStatus(ctx context.Context, checklist domain.Checklist, userID string) error {
	actions, err := s.checklistRepo.ListCorrectiveActionsByChecklist(ctx, checklist.ChecklistID)
	if err != nil {
		return err
	}
	status := fleet.DeriveChecklistStatus(checklist, actions)
	if status == checklist.Status {
		return nil
	}
	return s.checklistRepo.UpdateChecklistStatus(ctx, checklist.ChecklistID, status, userID)
}

func (s *checklistService) CreateCorrectiveAction(ctx context.Context, req dto.CreateCorrectiveActionRequest, userID string) (*domain.CorrectiveAction, error) {
	checklist, err := s.checklistRepo.FindChecklistByID(ctx, req.ChecklistID)
	if err != nil {
		return nil, err
	}

	var target *domain.ChecklistItem
	for i := range checklist.Items {
		if checklist.Items[i].ItemID == req.ItemID {
			target = &checklist.Items[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: item %s is not part of checklist %s", apperrors.ErrValidation, req.ItemID, req.ChecklistID)
	}
	if target.Status != domain.ItemProblem {
		return nil, fmt.Errorf("%w: item %s has no problem to correct", apperrors.ErrValidation, req.ItemID)
	}

	action := domain.CorrectiveAction{
		ActionID:    uuid.NewString(),
		ChecklistID: req.ChecklistID,
		ItemID:      req.ItemID,
		CorrectedBy: req.CorrectedBy,
		ActionTaken: req.ActionTaken,
		AuditFields: newAuditFields(userID, time.Now()),
	}

	if err := s.checklistRepo.SaveCorrectiveAction(ctx, action); err != nil {
		return nil, err
	}
	if err := s.recomputeStatus(ctx, *checklist, userID); err != nil {
		return nil, err
	}
	return &action, nil
}

func (s *checklistService) VerifyCorrectiveAction(ctx context.Context, actionID string, req dto.VerifyCorrectiveActionRequest, userID string) (*domain.CorrectiveAction, error) {
	action, err := s.checklistRepo.FindCorrectiveActionByID(ctx, actionID)
	if err != nil {
		return nil, err
	}
	if action.Verified {
		return nil, fmt.Errorf("%w: action %s is already verified", apperrors.ErrValidation, actionID)
	}

	now := time.Now()
	action.Verified = true
	action.VerifiedBy = req.VerifiedBy
	action.VerifiedAt = &now
	touch(&action.AuditFields, userID, now)

	if err := s.checklistRepo.UpdateCorrectiveAction(ctx, *action); err != nil {
		return nil, err
	}

	checklist, err := s.checklistRepo.FindChecklistByID(ctx, action.ChecklistID)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeStatus(ctx, *checklist, userID); err != nil {
		return nil, err
	}
	return action, nil
}

func (s *checklistService) ListCorrectiveActions(ctx context.Context, checklistID string) ([]domain.CorrectiveAction, error) {
	return s.checklistRepo.ListCorrectiveActionsByChecklist(ctx, checklistID)
}

func (s *checklistService) ListDefinitions(ctx context.Context, checklistType domain.ChecklistType) ([]domain.ChecklistDefinition, error) {
	return s.checklistRepo.ListDefinitionsByType(ctx, checklistType)
}
