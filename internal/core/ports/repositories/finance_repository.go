package repositories

import (
	"context"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// AccountRepository persists financial accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.FinancialAccount) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error)
	ListAccounts(ctx context.Context) ([]domain.FinancialAccount, error)
	UpdateAccount(ctx context.Context, account domain.FinancialAccount) error
	DeleteAccount(ctx context.Context, accountID string) error
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
}

// TransactionRepository persists transactions.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// FuelEntryRepository persists fuel entries. SaveFuelEntryWithTransaction
// writes the entry, its generated expense transaction and the truck km update
// in a single database transaction.
type FuelEntryRepository interface {
	SaveFuelEntry(ctx context.Context, entry domain.FuelEntry) error
	SaveFuelEntryWithTransaction(ctx context.Context, entry domain.FuelEntry, txn *domain.Transaction, truckKmUpdate *TruckKmUpdate) error
	ListFuelEntries(ctx context.Context) ([]domain.FuelEntry, error)
	ListFuelEntriesByVehicle(ctx context.Context, vehicleID string) ([]domain.FuelEntry, error)
	DeleteFuelEntry(ctx context.Context, fuelEntryID string) error
}

// TruckKmUpdate advances a truck's odometer as part of a composite write.
type TruckKmUpdate struct {
	VehicleID string
	CurrentKm int64
}
