package dto

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTripRequest starts a trip. All financial fields begin at zero.
type CreateTripRequest struct {
	VehicleID     string    `json:"vehicleID" binding:"required"`
	DriverID      string    `json:"driverID"`
	CustomerID    string    `json:"customerID"`
	StartLocation string    `json:"startLocation" binding:"required"`
	StartKm       int64     `json:"startKm" binding:"required"`
	StartDate     time.Time `json:"startDate" binding:"required"`
}

// CompleteTripRequest finishes a trip. When PayCommission is set the driver
// commission is fixed at 10% of the freight amount.
type CompleteTripRequest struct {
	EndLocation         string          `json:"endLocation" binding:"required"`
	EndKm               int64           `json:"endKm" binding:"required"`
	EndDate             time.Time       `json:"endDate" binding:"required"`
	FreightAmount       decimal.Decimal `json:"freightAmount"`
	ExtraExpensesAmount decimal.Decimal `json:"extraExpensesAmount"`
	FuelAmount          decimal.Decimal `json:"fuelAmount"`
	PayCommission       bool            `json:"payCommission"`
	AccountID           string          `json:"accountID"`
}

// TripResponse mirrors domain.Trip plus derived profit.
type TripResponse struct {
	TripID     string            `json:"tripID"`
	VehicleID  string            `json:"vehicleID"`
	DriverID   string            `json:"driverID,omitempty"`
	CustomerID string            `json:"customerID,omitempty"`
	Status     domain.TripStatus `json:"status"`

	StartLocation string    `json:"startLocation"`
	StartKm       int64     `json:"startKm"`
	StartDate     time.Time `json:"startDate"`

	EndLocation string     `json:"endLocation,omitempty"`
	EndKm       int64      `json:"endKm,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`

	FreightAmount       decimal.Decimal `json:"freightAmount"`
	ExtraExpensesAmount decimal.Decimal `json:"extraExpensesAmount"`
	FuelAmount          decimal.Decimal `json:"fuelAmount"`
	CommissionAmount    decimal.Decimal `json:"commissionAmount"`
	Profit              decimal.Decimal `json:"profit"`

	CreatedAt time.Time `json:"createdAt"`
}

// ToTripResponse converts a domain.Trip.
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		TripID:              t.TripID,
		VehicleID:           t.VehicleID,
		DriverID:            t.DriverID,
		CustomerID:          t.CustomerID,
		Status:              t.Status,
		StartLocation:       t.StartLocation,
		StartKm:             t.StartKm,
		StartDate:           t.StartDate,
		EndLocation:         t.EndLocation,
		EndKm:               t.EndKm,
		EndDate:             t.EndDate,
		FreightAmount:       t.FreightAmount,
		ExtraExpensesAmount: t.ExtraExpensesAmount,
		FuelAmount:          t.FuelAmount,
		CommissionAmount:    t.CommissionAmount,
		Profit:              t.Profit(),
		CreatedAt:           t.CreatedAt,
	}
}

// ToListTripResponse converts a slice of trips.
func ToListTripResponse(trips []domain.Trip) []TripResponse {
	res := make([]TripResponse, len(trips))
	for i := range trips {
		res[i] = ToTripResponse(&trips[i])
	}
	return res
}
