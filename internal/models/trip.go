package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is the DB representation of a trip row (table: trips).
type Trip struct {
	TripID              string
	VehicleID           string
	DriverID            string
	CustomerID          string
	Status              string
	StartLocation       string
	StartKm             int64
	StartDate           time.Time
	EndLocation         string
	EndKm               int64
	EndDate             *time.Time
	FreightAmount       decimal.Decimal
	ExtraExpensesAmount decimal.Decimal
	FuelAmount          decimal.Decimal
	CommissionAmount    decimal.Decimal
	AuditFields
}
