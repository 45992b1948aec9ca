package repositories

import (
	"context"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// ChecklistRepository persists checklists, their corrective actions and the
// checklist item templates.
type ChecklistRepository interface {
	SaveChecklist(ctx context.Context, checklist domain.Checklist) error
	FindChecklistByID(ctx context.Context, checklistID string) (*domain.Checklist, error)
	ListChecklists(ctx context.Context) ([]domain.Checklist, error)
	ListChecklistsByVehicle(ctx context.Context, vehicleID string) ([]domain.Checklist, error)
	UpdateChecklistStatus(ctx context.Context, checklistID string, status domain.ChecklistStatus, updatedBy string) error
	DeleteChecklist(ctx context.Context, checklistID string) error

	SaveCorrectiveAction(ctx context.Context, action domain.CorrectiveAction) error
	FindCorrectiveActionByID(ctx context.Context, actionID string) (*domain.CorrectiveAction, error)
	ListCorrectiveActionsByChecklist(ctx context.Context, checklistID string) ([]domain.CorrectiveAction, error)
	UpdateCorrectiveAction(ctx context.Context, action domain.CorrectiveAction) error

	ListDefinitionsByType(ctx context.Context, checklistType domain.ChecklistType) ([]domain.ChecklistDefinition, error)
	SaveDefinition(ctx context.Context, definition domain.ChecklistDefinition) error
}
