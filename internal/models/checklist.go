package models

import "time"

// ChecklistItem is the canonical JSON shape stored in the checklists.items
// jsonb column. The aliases item_id/label/status/comment/photo_url are the
// storage keys; legacy name/photo keys are normalized on the way in.
type ChecklistItem struct {
	ItemID   string `json:"item_id"`
	Label    string `json:"label"`
	Status   string `json:"status"`
	Comment  string `json:"comment,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// Checklist is the DB representation of a checklist row (table: checklists).
type Checklist struct {
	ChecklistID string
	VehicleID   string
	Date        time.Time
	Type        string
	Items       []ChecklistItem
	Status      string
	AuditFields
}

// CorrectiveAction is the DB representation of a corrective action row
// (table: corrective_actions).
type CorrectiveAction struct {
	ActionID    string
	ChecklistID string
	ItemID      string
	CorrectedBy string
	ActionTaken string
	Verified    bool
	VerifiedBy  string
	VerifiedAt  *time.Time
	AuditFields
}

// ChecklistDefinition is the DB representation of a checklist template item
// (table: checklist_definitions).
type ChecklistDefinition struct {
	DefinitionID string
	Type         string
	Label        string
	Position     int
	AuditFields
}
