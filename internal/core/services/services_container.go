package services

import (
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service facade onto the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Vehicle:     NewVehicleService(repos.VehicleRepo),
		Driver:      NewDriverService(repos.DriverRepo),
		Checklist:   NewChecklistService(repos.ChecklistRepo, repos.VehicleRepo),
		Maintenance: NewMaintenanceService(repos.MaintenanceRepo, repos.VehicleRepo),
		Account:     NewAccountService(repos.AccountRepo),
		Supplier:    NewSupplierService(repos.SupplierRepo),
		Customer:    NewCustomerService(repos.CustomerRepo),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Fuel:        NewFuelService(repos.FuelEntryRepo, repos.VehicleRepo),
		Trip:        NewTripService(repos.TripRepo, repos.VehicleRepo),
		Reporting:   NewReportingService(repos.AccountRepo, repos.TransactionRepo, repos.VehicleRepo, repos.TripRepo, repos.DriverRepo),
		Backup:      NewBackupService(repos.BackupRepo),
	}
}
