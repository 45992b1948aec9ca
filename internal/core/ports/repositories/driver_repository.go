package repositories

import (
	"context"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// DriverRepository persists drivers.
type DriverRepository interface {
	SaveDriver(ctx context.Context, driver domain.Driver) error
	FindDriverByID(ctx context.Context, driverID string) (*domain.Driver, error)
	FindDriverByCPF(ctx context.Context, cpf string) (*domain.Driver, error)
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
	UpdateDriver(ctx context.Context, driver domain.Driver) error
	DeleteDriver(ctx context.Context, driverID string) error
}
