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

type maintenanceService struct {
	maintenanceRepo portsrepo.MaintenanceRepository
	vehicleRepo     portsrepo.VehicleRepository
}

// NewMaintenanceService creates the maintenance task and alert feed service.
func NewMaintenanceService(maintenanceRepo portsrepo.MaintenanceRepository, vehicleRepo portsrepo.VehicleRepository) portssvc.MaintenanceSvcFacade {
	return &maintenanceService{maintenanceRepo: maintenanceRepo, vehicleRepo: vehicleRepo}
}

func (s *maintenanceService) CreateTask(ctx context.Context, req dto.CreateMaintenanceTaskRequest, userID string) (*domain.MaintenanceTask, error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, req.VehicleID); err != nil {
		return nil, fmt.Errorf("vehicle %s: %w", req.VehicleID, err)
	}

	task := domain.MaintenanceTask{
		TaskID:      uuid.NewString(),
		VehicleID:   req.VehicleID,
		Description: req.Description,
		Priority:    req.Priority,
		Cost:        req.Cost,
		DueDate:     req.DueDate,
		Status:      domain.TaskPending,
		AuditFields: newAuditFields(userID, time.Now()),
	}

	if err := s.maintenanceRepo.SaveTask(ctx, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *maintenanceService) GetTaskByID(ctx context.Context, taskID string) (*domain.MaintenanceTask, error) {
	return s.maintenanceRepo.FindTaskByID(ctx, taskID)
}

func (s *maintenanceService) ListTasks(ctx context.Context) ([]domain.MaintenanceTask, error) {
	return s.maintenanceRepo.ListTasks(ctx)
}

func (s *maintenanceService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateMaintenanceTaskRequest, userID string) (*domain.MaintenanceTask, error) {
	task, err := s.maintenanceRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == domain.TaskDone {
		return nil, fmt.Errorf("%w: completed tasks cannot be edited", apperrors.ErrValidation)
	}

	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Cost != nil {
		task.Cost = req.Cost
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	touch(&task.AuditFields, userID, time.Now())

	if err := s.maintenanceRepo.UpdateTask(ctx, *task); err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteTask flips a pending task to DONE. With ConvertToExpense set and a
// cost present, the linked expense transaction is written atomically with the
// status flip.
func (s *maintenanceService) CompleteTask(ctx context.Context, taskID string, req dto.CompleteMaintenanceTaskRequest, userID string) (*domain.MaintenanceTask, error) {
	task, err := s.maintenanceRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != domain.TaskPending {
		return nil, fmt.Errorf("%w: maintenance task is not pending", apperrors.ErrValidation)
	}

	now := time.Now()
	task.Status = domain.TaskDone
	touch(&task.AuditFields, userID, now)

	var txn *domain.Transaction
	if req.ConvertToExpense {
		if task.Cost == nil || task.Cost.IsZero() {
			return nil, fmt.Errorf("%w: a cost is required to convert the task into an expense", apperrors.ErrValidation)
		}
		txn = &domain.Transaction{
			TransactionID: uuid.NewString(),
			Type:          domain.TransactionExpense,
			Status:        domain.TransactionPending,
			Amount:        *task.Cost,
			Description:   task.Description,
			Category:      domain.CategoryMaintenance,
			DueDate:       now,
			AccountID:     req.AccountID,
			VehicleID:     task.VehicleID,
			SupplierID:    req.SupplierID,
			AuditFields:   newAuditFields(userID, now),
		}
		task.TransactionID = txn.TransactionID
	}

	if err := s.maintenanceRepo.MarkDoneWithExpense(ctx, *task, txn); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *maintenanceService) DeleteTask(ctx context.Context, taskID string) error {
	return s.maintenanceRepo.DeleteTask(ctx, taskID)
}

// ListAlerts builds the unified feed from truck oil-change projections and
// pending tasks.
func (s *maintenanceService) ListAlerts(ctx context.Context) ([]domain.Alert, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.maintenanceRepo.ListPendingTasks(ctx)
	if err != nil {
		return nil, err
	}
	return fleet.BuildAlerts(vehicles, tasks), nil
}
