package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceTask is the DB representation of a maintenance task row
// (table: maintenance_alerts).
type MaintenanceTask struct {
	TaskID        string
	VehicleID     string
	Description   string
	Priority      string
	Cost          *decimal.Decimal
	DueDate       *time.Time
	Status        string
	TransactionID string
	AuditFields
}
