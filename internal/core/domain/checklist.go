package domain

import "time"

// ChecklistType distinguishes maintenance inspections from loading checks.
type ChecklistType string

const (
	ChecklistMaintenance ChecklistType = "MAINTENANCE"
	ChecklistLoading     ChecklistType = "LOADING"
)

// ItemStatus is the per-item inspection outcome.
type ItemStatus string

const (
	ItemOK      ItemStatus = "OK"
	ItemProblem ItemStatus = "PROBLEM"
)

// ChecklistStatus is the derived overall state of a checklist.
type ChecklistStatus string

const (
	ChecklistOK        ChecklistStatus = "OK"
	ChecklistCorrected ChecklistStatus = "CORRECTED"
	ChecklistProblem   ChecklistStatus = "PROBLEM"
)

// ChecklistItem is the canonical item shape. Legacy records using name/photo
// keys are normalized to this shape at the data-access boundary.
type ChecklistItem struct {
	ItemID   string     `json:"itemID"`
	Label    string     `json:"label"`
	Status   ItemStatus `json:"status"`
	Comment  string     `json:"comment,omitempty"`
	PhotoURL string     `json:"photoURL,omitempty"`
}

// Checklist is an inspection record for a vehicle. Items are immutable once
// created; only the derived status changes as corrective actions accumulate.
type Checklist struct {
	ChecklistID string          `json:"checklistID"`
	VehicleID   string          `json:"vehicleID"`
	Date        time.Time       `json:"date"`
	Type        ChecklistType   `json:"type"`
	Items       []ChecklistItem `json:"items"`
	Status      ChecklistStatus `json:"status"`
	AuditFields
}

// CorrectiveAction is a remediation record for a failed checklist item,
// optionally followed by an independent verification step.
type CorrectiveAction struct {
	ActionID    string     `json:"actionID"`
	ChecklistID string     `json:"checklistID"`
	ItemID      string     `json:"itemID"`
	CorrectedBy string     `json:"correctedBy"`
	ActionTaken string     `json:"actionTaken"`
	Verified    bool       `json:"verified"`
	VerifiedBy  string     `json:"verifiedBy,omitempty"`
	VerifiedAt  *time.Time `json:"verifiedAt,omitempty"`
	AuditFields
}

// ChecklistDefinition is a template item used to pre-fill new checklists of a
// given type.
type ChecklistDefinition struct {
	DefinitionID string        `json:"definitionID"`
	Type         ChecklistType `json:"type"`
	Label        string        `json:"label"`
	Position     int           `json:"position"`
	AuditFields
}
