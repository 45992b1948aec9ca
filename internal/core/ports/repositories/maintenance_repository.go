package repositories

import (
	"context"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// MaintenanceRepository persists maintenance tasks. MarkDoneWithExpense
// applies the status flip and the optional generated expense transaction in a
// single database transaction.
type MaintenanceRepository interface {
	SaveTask(ctx context.Context, task domain.MaintenanceTask) error
	FindTaskByID(ctx context.Context, taskID string) (*domain.MaintenanceTask, error)
	ListTasks(ctx context.Context) ([]domain.MaintenanceTask, error)
	ListPendingTasks(ctx context.Context) ([]domain.MaintenanceTask, error)
	UpdateTask(ctx context.Context, task domain.MaintenanceTask) error
	MarkDoneWithExpense(ctx context.Context, task domain.MaintenanceTask, txn *domain.Transaction) error
	DeleteTask(ctx context.Context, taskID string) error
}
