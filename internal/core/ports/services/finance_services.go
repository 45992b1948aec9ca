package services

import (
	"context"

	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/frotaops/frota_backend/internal/dto"
)

// AccountSvcFacade manages financial accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.FinancialAccount, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error)
	ListAccounts(ctx context.Context) ([]domain.FinancialAccount, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.FinancialAccount, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// SupplierSvcFacade manages suppliers.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// CustomerSvcFacade manages customers.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

// TransactionSvcFacade manages transactions, settlement and installments.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	CreateInstallments(ctx context.Context, req dto.CreateInstallmentsRequest, userID string) ([]domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	PayTransaction(ctx context.Context, transactionID string, req dto.PayTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// FuelSvcFacade manages fuel entries.
type FuelSvcFacade interface {
	CreateFuelEntry(ctx context.Context, req dto.CreateFuelEntryRequest, userID string) (*domain.FuelEntry, error)
	ListFuelEntries(ctx context.Context) ([]domain.FuelEntry, error)
	ListFuelEntriesByVehicle(ctx context.Context, vehicleID string) ([]domain.FuelEntry, error)
	DeleteFuelEntry(ctx context.Context, fuelEntryID string) error
}

// TripSvcFacade manages the trip lifecycle. Completion posts the generated
// financial entries atomically with the trip update.
type TripSvcFacade interface {
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, userID string) (*domain.Trip, error)
	GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error)
	ListTrips(ctx context.Context) ([]domain.Trip, error)
	CompleteTrip(ctx context.Context, tripID string, req dto.CompleteTripRequest, userID string) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
}
