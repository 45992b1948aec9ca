package pgsql

import (
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		VehicleRepo:     newPgxVehicleRepository(pool),
		DriverRepo:      newPgxDriverRepository(pool),
		ChecklistRepo:   newPgxChecklistRepository(pool),
		AccountRepo:     newPgxAccountRepository(pool),
		SupplierRepo:    newPgxSupplierRepository(pool),
		CustomerRepo:    newPgxCustomerRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		FuelEntryRepo:   newPgxFuelEntryRepository(pool),
		TripRepo:        newPgxTripRepository(pool),
		MaintenanceRepo: newPgxMaintenanceRepository(pool),
		BackupRepo:      newPgxBackupRepository(pool),
	}
}
