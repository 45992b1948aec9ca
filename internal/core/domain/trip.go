package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripStatus is the trip lifecycle state. COMPLETED is terminal.
type TripStatus string

const (
	TripInProgress TripStatus = "IN_PROGRESS"
	TripCompleted  TripStatus = "COMPLETED"
)

// Trip is a freight trip. Start fields are fixed at creation; end fields and
// the financial amounts are supplied on completion.
type Trip struct {
	TripID     string     `json:"tripID"`
	VehicleID  string     `json:"vehicleID"`
	DriverID   string     `json:"driverID,omitempty"`
	CustomerID string     `json:"customerID,omitempty"`
	Status     TripStatus `json:"status"`

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

	AuditFields
}

// Profit returns freight minus extra expenses, fuel and commission.
func (t Trip) Profit() decimal.Decimal {
	return t.FreightAmount.Sub(t.ExtraExpensesAmount).Sub(t.FuelAmount).Sub(t.CommissionAmount)
}
