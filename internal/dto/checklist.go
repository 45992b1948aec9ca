package dto

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// ChecklistItemInput is one inspected item of a new checklist.
type ChecklistItemInput struct {
	Label    string            `json:"label" binding:"required"`
	Status   domain.ItemStatus `json:"status" binding:"required,oneof=OK PROBLEM"`
	Comment  string            `json:"comment"`
	PhotoURL string            `json:"photoURL"`
}

// CreateChecklistRequest defines the data needed to record a checklist.
// Checklists are immutable once created; only corrective actions change their
// derived status afterwards.
type CreateChecklistRequest struct {
	VehicleID string               `json:"vehicleID" binding:"required"`
	Date      time.Time            `json:"date" binding:"required"`
	Type      domain.ChecklistType `json:"type" binding:"required,oneof=MAINTENANCE LOADING"`
	Items     []ChecklistItemInput `json:"items" binding:"required,min=1,dive"`
}

// ChecklistResponse mirrors domain.Checklist.
type ChecklistResponse struct {
	ChecklistID string                 `json:"checklistID"`
	VehicleID   string                 `json:"vehicleID"`
	Date        time.Time              `json:"date"`
	Type        domain.ChecklistType   `json:"type"`
	Items       []domain.ChecklistItem `json:"items"`
	Status      domain.ChecklistStatus `json:"status"`
	CreatedAt   time.Time              `json:"createdAt"`
	CreatedBy   string                 `json:"createdBy"`
}

// ToChecklistResponse converts a domain.Checklist to its response DTO.
func ToChecklistResponse(c *domain.Checklist) ChecklistResponse {
	return ChecklistResponse{
		ChecklistID: c.ChecklistID,
		VehicleID:   c.VehicleID,
		Date:        c.Date,
		Type:        c.Type,
		Items:       c.Items,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		CreatedBy:   c.CreatedBy,
	}
}

// ToListChecklistResponse converts a slice of checklists.
func ToListChecklistResponse(checklists []domain.Checklist) []ChecklistResponse {
	res := make([]ChecklistResponse, len(checklists))
	for i := range checklists {
		res[i] = ToChecklistResponse(&checklists[i])
	}
	return res
}

// CreateCorrectiveActionRequest records a remediation for a PROBLEM item.
type CreateCorrectiveActionRequest struct {
	ChecklistID string `json:"checklistID" binding:"required"`
	ItemID      string `json:"itemID" binding:"required"`
	CorrectedBy string `json:"correctedBy" binding:"required"`
	ActionTaken string `json:"actionTaken" binding:"required"`
}

// VerifyCorrectiveActionRequest marks an action as independently verified.
type VerifyCorrectiveActionRequest struct {
	VerifiedBy string `json:"verifiedBy" binding:"required"`
}

// CorrectiveActionResponse mirrors domain.CorrectiveAction.
type CorrectiveActionResponse struct {
	ActionID    string     `json:"actionID"`
	ChecklistID string     `json:"checklistID"`
	ItemID      string     `json:"itemID"`
	CorrectedBy string     `json:"correctedBy"`
	ActionTaken string     `json:"actionTaken"`
	Verified    bool       `json:"verified"`
	VerifiedBy  string     `json:"verifiedBy,omitempty"`
	VerifiedAt  *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToCorrectiveActionResponse converts a domain.CorrectiveAction.
func ToCorrectiveActionResponse(a *domain.CorrectiveAction) CorrectiveActionResponse {
	return CorrectiveActionResponse{
		ActionID:    a.ActionID,
		ChecklistID: a.ChecklistID,
		ItemID:      a.ItemID,
		CorrectedBy: a.CorrectedBy,
		ActionTaken: a.ActionTaken,
		Verified:    a.Verified,
		VerifiedBy:  a.VerifiedBy,
		VerifiedAt:  a.VerifiedAt,
		CreatedAt:   a.CreatedAt,
	}
}

// ToListCorrectiveActionResponse converts a slice of corrective actions.
func ToListCorrectiveActionResponse(actions []domain.CorrectiveAction) []CorrectiveActionResponse {
	res := make([]CorrectiveActionResponse, len(actions))
	for i := range actions {
		res[i] = ToCorrectiveActionResponse(&actions[i])
	}
	return res
}
