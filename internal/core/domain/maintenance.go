package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskPriority orders maintenance work.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// TaskStatus tracks whether a maintenance task is still open.
type TaskStatus string

const (
	TaskPending TaskStatus = "PENDING"
	TaskDone    TaskStatus = "DONE"
)

// MaintenanceTask is an ad hoc maintenance alert, optionally converted into an
// expense transaction when completed.
type MaintenanceTask struct {
	TaskID        string           `json:"taskID"`
	VehicleID     string           `json:"vehicleID"`
	Description   string           `json:"description"`
	Priority      TaskPriority     `json:"priority"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Status        TaskStatus       `json:"status"`
	TransactionID string           `json:"transactionID,omitempty"`
	AuditFields
}

// AlertSeverity orders the unified alert feed. URGENT entries always precede
// ATTENTION entries.
type AlertSeverity string

const (
	AlertUrgent    AlertSeverity = "URGENT"
	AlertAttention AlertSeverity = "ATTENTION"
)

// AlertSource identifies what produced an alert.
type AlertSource string

const (
	AlertOilChange AlertSource = "OIL_CHANGE"
	AlertTask      AlertSource = "TASK"
)

// Alert is one entry of the unified maintenance alert feed.
type Alert struct {
	Severity    AlertSeverity `json:"severity"`
	Source      AlertSource   `json:"source"`
	VehicleID   string        `json:"vehicleID"`
	TaskID      string        `json:"taskID,omitempty"`
	Message     string        `json:"message"`
	RemainingKm int64         `json:"remainingKm,omitempty"`
}
