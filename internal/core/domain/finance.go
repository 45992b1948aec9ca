package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind is the container type of a financial account.
type AccountKind string

const (
	AccountWallet     AccountKind = "WALLET"
	AccountBank       AccountKind = "BANK"
	AccountCash       AccountKind = "CASH"
	AccountCreditCard AccountKind = "CREDIT_CARD"
)

// FinancialAccount holds an initial balance; the running balance is always
// derived from PAID transactions, never stored.
type FinancialAccount struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Kind           AccountKind     `json:"kind"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	AuditFields
}

// SupplierCategory classifies expense payees.
type SupplierCategory string

const (
	SupplierFuel        SupplierCategory = "FUEL"
	SupplierMaintenance SupplierCategory = "MAINTENANCE"
	SupplierParts       SupplierCategory = "PARTS"
	SupplierService     SupplierCategory = "SERVICE"
	SupplierInsurance   SupplierCategory = "INSURANCE"
	SupplierGeneral     SupplierCategory = "GENERAL"
)

// Supplier is an expense counterpart registry entry.
type Supplier struct {
	SupplierID string           `json:"supplierID"`
	Name       string           `json:"name"`
	Category   SupplierCategory `json:"category"`
	Phone      string           `json:"phone,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	AuditFields
}

// Customer is an income counterpart registry entry.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Document   string `json:"document,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Notes      string `json:"notes,omitempty"`
	AuditFields
}

// TransactionType indicates money direction.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// TransactionStatus is the settlement state of a transaction. Only PAID
// transactions affect realized cash balances.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionPaid      TransactionStatus = "PAID"
	TransactionCancelled TransactionStatus = "CANCELLED"
)

// Well-known transaction categories. Category is free-form text; these are the
// values the system itself writes.
const (
	CategoryFuel        = "FUEL"
	CategoryCommission  = "COMMISSION"
	CategoryFreight     = "FREIGHT"
	CategoryMaintenance = "MAINTENANCE"
	CategoryTripExpense = "TRIP_EXPENSE"
	CategoryGeneral     = "GENERAL"
)

// Transaction is the central financial record. DueDate is when the obligation
// is scheduled; PaymentDate is when cash actually moved.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	DueDate       time.Time         `json:"dueDate"`
	PaymentDate   *time.Time        `json:"paymentDate,omitempty"`

	AccountID   string `json:"accountID,omitempty"`
	VehicleID   string `json:"vehicleID,omitempty"`
	SupplierID  string `json:"supplierID,omitempty"`
	CustomerID  string `json:"customerID,omitempty"`
	DriverID    string `json:"driverID,omitempty"`
	TripID      string `json:"tripID,omitempty"`
	ChecklistID string `json:"checklistID,omitempty"`

	AuditFields
}

// FuelEntry is a fuel purchase record. TotalCost is accepted as sent and is
// not recomputed from liters and price.
type FuelEntry struct {
	FuelEntryID   string          `json:"fuelEntryID"`
	VehicleID     string          `json:"vehicleID"`
	Date          time.Time       `json:"date"`
	Liters        decimal.Decimal `json:"liters"`
	PricePerLiter decimal.Decimal `json:"pricePerLiter"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Mileage       int64           `json:"mileage"`
	SupplierID    string          `json:"supplierID,omitempty"`
	TransactionID string          `json:"transactionID,omitempty"`
	AuditFields
}
