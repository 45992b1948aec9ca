package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialAccount is the DB representation of a financial account row
// (table: financial_accounts).
type FinancialAccount struct {
	AccountID      string
	Name           string
	Kind           string
	InitialBalance decimal.Decimal
	AuditFields
}

// Supplier is the DB representation of a supplier row (table: suppliers).
type Supplier struct {
	SupplierID string
	Name       string
	Category   string
	Phone      string
	Notes      string
	AuditFields
}

// Customer is the DB representation of a customer row (table: customers).
type Customer struct {
	CustomerID string
	Name       string
	Document   string
	Phone      string
	Notes      string
	AuditFields
}

// Transaction is the DB representation of a transaction row (table:
// transactions). Optional foreign keys are stored as nullable columns and
// surfaced as empty strings in the domain.
type Transaction struct {
	TransactionID string
	Type          string
	Status        string
	Amount        decimal.Decimal
	Description   string
	Category      string
	DueDate       time.Time
	PaymentDate   *time.Time
	AccountID     string
	VehicleID     string
	SupplierID    string
	CustomerID    string
	DriverID      string
	TripID        string
	ChecklistID   string
	AuditFields
}

// FuelEntry is the DB representation of a fuel entry row (table: fuel_entries).
type FuelEntry struct {
	FuelEntryID   string
	VehicleID     string
	Date          time.Time
	Liters        decimal.Decimal
	PricePerLiter decimal.Decimal
	TotalCost     decimal.Decimal
	Mileage       int64
	SupplierID    string
	TransactionID string
	AuditFields
}
