package dto

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFuelEntryRequest defines the data needed to record a fuel purchase.
// TotalCost is stored as sent, not recomputed. When CreateTransaction is set
// the entry posts a linked FUEL expense.
type CreateFuelEntryRequest struct {
	VehicleID         string          `json:"vehicleID" binding:"required"`
	Date              time.Time       `json:"date" binding:"required"`
	Liters            decimal.Decimal `json:"liters" binding:"required"`
	PricePerLiter     decimal.Decimal `json:"pricePerLiter" binding:"required"`
	TotalCost         decimal.Decimal `json:"totalCost" binding:"required"`
	Mileage           int64           `json:"mileage"`
	SupplierID        string          `json:"supplierID"`
	AccountID         string          `json:"accountID"`
	CreateTransaction bool            `json:"createTransaction"`
}

// FuelEntryResponse mirrors domain.FuelEntry.
type FuelEntryResponse struct {
	FuelEntryID   string          `json:"fuelEntryID"`
	VehicleID     string          `json:"vehicleID"`
	Date          time.Time       `json:"date"`
	Liters        decimal.Decimal `json:"liters"`
	PricePerLiter decimal.Decimal `json:"pricePerLiter"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Mileage       int64           `json:"mileage"`
	SupplierID    string          `json:"supplierID,omitempty"`
	TransactionID string          `json:"transactionID,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToFuelEntryResponse converts a domain.FuelEntry.
func ToFuelEntryResponse(e *domain.FuelEntry) FuelEntryResponse {
	return FuelEntryResponse{
		FuelEntryID:   e.FuelEntryID,
		VehicleID:     e.VehicleID,
		Date:          e.Date,
		Liters:        e.Liters,
		PricePerLiter: e.PricePerLiter,
		TotalCost:     e.TotalCost,
		Mileage:       e.Mileage,
		SupplierID:    e.SupplierID,
		TransactionID: e.TransactionID,
		CreatedAt:     e.CreatedAt,
	}
}

// ToListFuelEntryResponse converts a slice of fuel entries.
func ToListFuelEntryResponse(entries []domain.FuelEntry) []FuelEntryResponse {
	res := make([]FuelEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToFuelEntryResponse(&entries[i])
	}
	return res
}
