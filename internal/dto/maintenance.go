package dto

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMaintenanceTaskRequest defines the data needed to open a maintenance
// task.
type CreateMaintenanceTaskRequest struct {
	VehicleID   string              `json:"vehicleID" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Priority    domain.TaskPriority `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
	Cost        *decimal.Decimal    `json:"cost"`
	DueDate     *time.Time          `json:"dueDate"`
}

// UpdateMaintenanceTaskRequest defines the fields allowed for updating a task.
type UpdateMaintenanceTaskRequest struct {
	Description *string              `json:"description"`
	Priority    *domain.TaskPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Cost        *decimal.Decimal     `json:"cost"`
	DueDate     *time.Time           `json:"dueDate"`
}

// CompleteMaintenanceTaskRequest closes a task; with ConvertToExpense set and
// a cost present, a linked expense transaction is posted atomically.
type CompleteMaintenanceTaskRequest struct {
	ConvertToExpense bool   `json:"convertToExpense"`
	AccountID        string `json:"accountID"`
	SupplierID       string `json:"supplierID"`
}

// MaintenanceTaskResponse mirrors domain.MaintenanceTask.
type MaintenanceTaskResponse struct {
	TaskID        string              `json:"taskID"`
	VehicleID     string              `json:"vehicleID"`
	Description   string              `json:"description"`
	Priority      domain.TaskPriority `json:"priority"`
	Cost          *decimal.Decimal    `json:"cost,omitempty"`
	DueDate       *time.Time          `json:"dueDate,omitempty"`
	Status        domain.TaskStatus   `json:"status"`
	TransactionID string              `json:"transactionID,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToMaintenanceTaskResponse converts a domain.MaintenanceTask.
func ToMaintenanceTaskResponse(t *domain.MaintenanceTask) MaintenanceTaskResponse {
	return MaintenanceTaskResponse{
		TaskID:        t.TaskID,
		VehicleID:     t.VehicleID,
		Description:   t.Description,
		Priority:      t.Priority,
		Cost:          t.Cost,
		DueDate:       t.DueDate,
		Status:        t.Status,
		TransactionID: t.TransactionID,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListMaintenanceTaskResponse converts a slice of tasks.
func ToListMaintenanceTaskResponse(tasks []domain.MaintenanceTask) []MaintenanceTaskResponse {
	res := make([]MaintenanceTaskResponse, len(tasks))
	for i := range tasks {
		res[i] = ToMaintenanceTaskResponse(&tasks[i])
	}
	return res
}
