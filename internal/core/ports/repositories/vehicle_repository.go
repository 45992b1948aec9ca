package repositories

import (
	"context"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// VehicleRepository persists vehicles.
type VehicleRepository interface {
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID string) error
}
