package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	VehicleRepo     VehicleRepository
	DriverRepo      DriverRepository
	ChecklistRepo   ChecklistRepository
	AccountRepo     AccountRepository
	SupplierRepo    SupplierRepository
	CustomerRepo    CustomerRepository
	TransactionRepo TransactionRepository
	FuelEntryRepo   FuelEntryRepository
	TripRepo        TripRepository
	MaintenanceRepo MaintenanceRepository
	BackupRepo      BackupRepository
}
