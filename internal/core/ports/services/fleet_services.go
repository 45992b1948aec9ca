package services

import (
	"context"

	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/frotaops/frota_backend/internal/dto"
)

// VehicleSvcFacade manages the vehicle registry.
type VehicleSvcFacade interface {
	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, userID string) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, userID string) (*domain.Vehicle, error)
	UpdateTruckKm(ctx context.Context, vehicleID string, currentKm int64, userID string) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

// DriverSvcFacade manages drivers and their credentials.
type DriverSvcFacade interface {
	CreateDriver(ctx context.Context, req dto.CreateDriverRequest, userID string) (*domain.Driver, error)
	GetDriverByID(ctx context.Context, driverID string) (*domain.Driver, error)
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
	UpdateDriver(ctx context.Context, driverID string, req dto.UpdateDriverRequest, userID string) (*domain.Driver, error)
	DeleteDriver(ctx context.Context, driverID string) error
	// VerifyCredentials authenticates a driver by CPF and password, returning
	// ErrUnauthorized on any mismatch.
	VerifyCredentials(ctx context.Context, cpf, password string) (*domain.Driver, error)
}

// ChecklistSvcFacade manages checklists and corrective actions. The derived
// checklist status is recomputed after every corrective action change.
type ChecklistSvcFacade interface {
	CreateChecklist(ctx context.Context, req dto.CreateChecklistRequest, userID string) (*domain.Checklist, error)
	GetChecklistByID(ctx context.Context, checklistID string) (*domain.Checklist, error)
	ListChecklists(ctx context.Context) ([]domain.Checklist, error)
	ListChecklistsByVehicle(ctx context.Context, vehicleID string) ([]domain.Checklist, error)
	DeleteChecklist(ctx context.Context, checklistID string) error

	CreateCorrectiveAction(ctx context.Context, req dto.CreateCorrectiveActionRequest, userID string) (*domain.CorrectiveAction, error)
	VerifyCorrectiveAction(ctx context.Context, actionID string, req dto.VerifyCorrectiveActionRequest, userID string) (*domain.CorrectiveAction, error)
	ListCorrectiveActions(ctx context.Context, checklistID string) ([]domain.CorrectiveAction, error)

	ListDefinitions(ctx context.Context, checklistType domain.ChecklistType) ([]domain.ChecklistDefinition, error)
}

// MaintenanceSvcFacade manages maintenance tasks and the unified alert feed.
type MaintenanceSvcFacade interface {
	CreateTask(ctx context.Context, req dto.CreateMaintenanceTaskRequest, userID string) (*domain.MaintenanceTask, error)
	GetTaskByID(ctx context.Context, taskID string) (*domain.MaintenanceTask, error)
	ListTasks(ctx context.Context) ([]domain.MaintenanceTask, error)
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateMaintenanceTaskRequest, userID string) (*domain.MaintenanceTask, error)
	CompleteTask(ctx context.Context, taskID string, req dto.CompleteMaintenanceTaskRequest, userID string) (*domain.MaintenanceTask, error)
	DeleteTask(ctx context.Context, taskID string) error

	ListAlerts(ctx context.Context) ([]domain.Alert, error)
}
