package dto

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Type        domain.TransactionType   `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Status      domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID CANCELLED"`
	Amount      decimal.Decimal          `json:"amount" binding:"required"`
	Description string                   `json:"description" binding:"required"`
	Category    string                   `json:"category" binding:"required"`
	DueDate     time.Time                `json:"dueDate" binding:"required"`
	PaymentDate *time.Time               `json:"paymentDate"`

	AccountID   string `json:"accountID"`
	VehicleID   string `json:"vehicleID"`
	SupplierID  string `json:"supplierID"`
	CustomerID  string `json:"customerID"`
	DriverID    string `json:"driverID"`
	TripID      string `json:"tripID"`
	ChecklistID string `json:"checklistID"`
}

// UpdateTransactionRequest defines the fields allowed for updating a
// transaction.
type UpdateTransactionRequest struct {
	Status      *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID CANCELLED"`
	Amount      *decimal.Decimal          `json:"amount"`
	Description *string                   `json:"description"`
	Category    *string                   `json:"category"`
	DueDate     *time.Time                `json:"dueDate"`
	PaymentDate *time.Time                `json:"paymentDate"`
	AccountID   *string                   `json:"accountID"`
}

// PayTransactionRequest settles a pending transaction. PaymentDate defaults
// to today when omitted.
type PayTransactionRequest struct {
	PaymentDate *time.Time `json:"paymentDate"`
	AccountID   string     `json:"accountID"`
}

// CreateInstallmentsRequest creates N monthly installments from a base
// transaction; amounts and due dates are derived per installment.
type CreateInstallmentsRequest struct {
	CreateTransactionRequest
	Installments int `json:"installments" binding:"required,min=2,max=48"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Type          domain.TransactionType   `json:"type"`
	Status        domain.TransactionStatus `json:"status"`
	Amount        decimal.Decimal          `json:"amount"`
	Description   string                   `json:"description"`
	Category      string                   `json:"category"`
	DueDate       time.Time                `json:"dueDate"`
	PaymentDate   *time.Time               `json:"paymentDate,omitempty"`
	AccountID     string                   `json:"accountID,omitempty"`
	VehicleID     string                   `json:"vehicleID,omitempty"`
	SupplierID    string                   `json:"supplierID,omitempty"`
	CustomerID    string                   `json:"customerID,omitempty"`
	DriverID      string                   `json:"driverID,omitempty"`
	TripID        string                   `json:"tripID,omitempty"`
	ChecklistID   string                   `json:"checklistID,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          t.Type,
		Status:        t.Status,
		Amount:        t.Amount,
		Description:   t.Description,
		Category:      t.Category,
		DueDate:       t.DueDate,
		PaymentDate:   t.PaymentDate,
		AccountID:     t.AccountID,
		VehicleID:     t.VehicleID,
		SupplierID:    t.SupplierID,
		CustomerID:    t.CustomerID,
		DriverID:      t.DriverID,
		TripID:        t.TripID,
		ChecklistID:   t.ChecklistID,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
