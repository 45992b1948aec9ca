package domain

import (
	"github.com/shopspring/decimal"
)

// FinanceSummary is the dashboard headline: realized balance plus open
// payables and receivables.
type FinanceSummary struct {
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	PendingPayables    decimal.Decimal `json:"pendingPayables"`
	PendingReceivables decimal.Decimal `json:"pendingReceivables"`
}

// AccountBalance is an account with its derived running balance.
type AccountBalance struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Kind      AccountKind     `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
}

// CategoryTotal is one slice of the expense breakdown chart.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// VehicleProfit is the income/expense/profit triple for one vehicle.
type VehicleProfit struct {
	VehicleID string          `json:"vehicleID"`
	Plate     string          `json:"plate"`
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	Profit    decimal.Decimal `json:"profit"`
}

// MonthlyTotal is one point of the trailing trend series. Month is "YYYY-MM".
type MonthlyTotal struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// MonthBalance is the opening/closing projection for a selected month.
// Opening is cash basis (payment date); the in-month delta is due-date basis.
type MonthBalance struct {
	Month          string          `json:"month"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// DriverStatement is a driver's month view: all-time pending debt, amount paid
// in the month, and the month's transaction history.
type DriverStatement struct {
	DriverID         string          `json:"driverID"`
	Month            string          `json:"month"`
	TotalPendingDebt decimal.Decimal `json:"totalPendingDebt"`
	MonthPaid        decimal.Decimal `json:"monthPaid"`
	History          []Transaction   `json:"history"`
}

// DREReport is the simplified profit and loss statement for a month.
type DREReport struct {
	Month              string          `json:"month"`
	Revenue            decimal.Decimal `json:"revenue"`
	VariableCosts      decimal.Decimal `json:"variableCosts"`
	ContributionMargin decimal.Decimal `json:"contributionMargin"`
	FixedCosts         decimal.Decimal `json:"fixedCosts"`
	Result             decimal.Decimal `json:"result"`
}

// TripProfit is one row of the best/worst trip rankings.
type TripProfit struct {
	TripID        string          `json:"tripID"`
	VehicleID     string          `json:"vehicleID"`
	StartLocation string          `json:"startLocation"`
	EndLocation   string          `json:"endLocation"`
	FreightAmount decimal.Decimal `json:"freightAmount"`
	Profit        decimal.Decimal `json:"profit"`
}
