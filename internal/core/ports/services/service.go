package services

// ServiceContainer bundles all service facades for injection into the
// handlers.
type ServiceContainer struct {
	Vehicle     VehicleSvcFacade
	Driver      DriverSvcFacade
	Checklist   ChecklistSvcFacade
	Maintenance MaintenanceSvcFacade
	Account     AccountSvcFacade
	Supplier    SupplierSvcFacade
	Customer    CustomerSvcFacade
	Transaction TransactionSvcFacade
	Fuel        FuelSvcFacade
	Trip        TripSvcFacade
	Reporting   ReportingSvcFacade
	Backup      BackupSvcFacade
}
