package finreport_test

import (
	"testing"
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/frotaops/frota_backend/internal/utils/finreport"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCurrentBalance(t *testing.T) {
	accounts := []domain.FinancialAccount{
		{AccountID: "a1", InitialBalance: dec("1000")},
	}
	txns := []domain.Transaction{
		{Type: domain.TransactionIncome, Status: domain.TransactionPaid, Amount: dec("500")},
		{Type: domain.TransactionExpense, Status: domain.TransactionPaid, Amount: dec("200")},
		{Type: domain.TransactionIncome, Status: domain.TransactionPending, Amount: dec("999")},
		{Type: domain.TransactionExpense, Status: domain.TransactionCancelled, Amount: dec("999")},
	}

	got := finreport.CurrentBalance(accounts, txns)
	assert.True(t, dec("1300").Equal(got), "got %s", got)
}

func TestSummary(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.TransactionExpense, Status: domain.TransactionPending, Amount: dec("150")},
		{Type: domain.TransactionIncome, Status: domain.TransactionPending, Amount: dec("400")},
		{Type: domain.TransactionIncome, Status: domain.TransactionPaid, Amount: dec("100")},
	}

	summary := finreport.Summary(nil, txns)
	assert.True(t, dec("100").Equal(summary.CurrentBalance))
	assert.True(t, dec("150").Equal(summary.PendingPayables))
	assert.True(t, dec("400").Equal(summary.PendingReceivables))
}

func TestAccountBalances(t *testing.T) {
	accounts := []domain.FinancialAccount{
		{AccountID: "a1", Name: "Caixa", InitialBalance: dec("100")},
		{AccountID: "a2", Name: "Banco", InitialBalance: dec("0")},
	}
	txns := []domain.Transaction{
		{AccountID: "a1", Type: domain.TransactionIncome, Status: domain.TransactionPaid, Amount: dec("50")},
		{AccountID: "a1", Type: domain.TransactionExpense, Status: domain.TransactionPending, Amount: dec("70")},
		{AccountID: "a2", Type: domain.TransactionExpense, Status: domain.TransactionPaid, Amount: dec("30")},
	}

	balances := finreport.AccountBalances(accounts, txns)
	require.Len(t, balances, 2)
	assert.True(t, dec("150").Equal(balances[0].Balance), "got %s", balances[0].Balance)
	assert.True(t, dec("-30").Equal(balances[1].Balance), "got %s", balances[1].Balance)
}

func TestCategoryBreakdown_SortsDescending(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.TransactionExpense, Status: domain.TransactionPaid, Category: "FUEL", Amount: dec("300")},
		{Type: domain.TransactionExpense, Status: domain.TransactionPending, Category: "MAINTENANCE", Amount: dec("800")},
		{Type: domain.TransactionExpense, Status: domain.TransactionPaid, Category: "FUEL", Amount: dec("200")},
		{Type: domain.TransactionExpense, Status: domain.TransactionCancelled, Category: "FUEL", Amount: dec("999")},
		{Type: domain.TransactionIncome, Status: domain.TransactionPaid, Category: "FREIGHT", Amount: dec("5000")},
	}

	breakdown := finreport.CategoryBreakdown(txns)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "MAINTENANCE", breakdown[0].Category)
	assert.True(t, dec("800").Equal(breakdown[0].Total))
	assert.Equal(t, "FUEL", breakdown[1].Category)
	assert.True(t, dec("500").Equal(breakdown[1].Total))
}

func TestVehicleProfits_ExcludesInactiveVehicles(t *testing.T) {
	vehicles := []domain.Vehicle{
		{VehicleID: "v1", Plate: "ABC1D23"},
		{VehicleID: "v2", Plate: "XYZ9K88"},
	}
	txns := []domain.Transaction{
		{VehicleID: "v1", Type: domain.TransactionIncome, Status: domain.TransactionPaid, Amount: dec("1000")},
		{VehicleID: "v1", Type: domain.TransactionExpense, Status: domain.TransactionPending, Amount: dec("400")},
	}

	profits := finreport.VehicleProfits(vehicles, txns)
	require.Len(t, profits, 1)
	assert.Equal(t, "v1", profits[0].VehicleID)
	assert.True(t, dec("600").Equal(profits[0].Profit))
}

func TestMonthlyTrend_SixMonthsOldestFirst(t *testing.T) {
	now := date(2025, time.June, 15)
	txns := []domain.Transaction{
		{Type: domain.TransactionIncome, Status: domain.TransactionPaid, Amount: dec("100"), DueDate: date(2025, time.January, 10)},
		{Type: domain.TransactionExpense, Status: domain.TransactionPending, Amount: dec("40"), DueDate: date(2025, time.June, 5)},
		{Type: domain.TransactionIncome, Status: domain.TransactionPaid, Amount: dec("999"), DueDate: date(2024, time.December, 31)},
	}

	trend := finreport.MonthlyTrend(txns, now)
	require.Len(t, trend, 6)
	assert.Equal(t, "2025-01", trend[0].Month)
	assert.True(t, dec("100").Equal(trend[0].Income))
	assert.Equal(t, "2025-06", trend[5].Month)
	assert.True(t, dec("40").Equal(trend[5].Expense))
	assert.True(t, dec("-40").Equal(trend[5].Profit))
}

func TestMonthBalanceFor(t *testing.T) {
	accounts := []domain.FinancialAccount{
		{AccountID: "a1", InitialBalance: dec("1000")},
	}
	txns := []domain.Transaction{
		// Paid before the month: counts toward opening.
		{Type: domain.TransactionIncome, Status: domain.TransactionPaid, Amount: dec("500"),
			DueDate: date(2025, time.April, 10), PaymentDate: timePtr(date(2025, time.April, 12))},
		// Pending with a past due date: ignored for opening, cash basis.
		{Type: domain.TransactionExpense, Status: domain.TransactionPending, Amount: dec("300"),
			DueDate: date(2025, time.April, 20)},
		// Due in the month, still pending: counts in the delta, due-date basis.
		{Type: domain.TransactionIncome, Status: domain.TransactionPending, Amount: dec("200"),
			DueDate: date(2025, time.May, 5)},
		{Type: domain.TransactionExpense, Status: domain.TransactionPaid, Amount: dec("80"),
			DueDate: date(2025, time.May, 15), PaymentDate: timePtr(date(2025, time.May, 15))},
	}

	balance, err := finreport.MonthBalanceFor(accounts, txns, "2025-05")
	require.NoError(t, err)
	assert.True(t, dec("1500").Equal(balance.OpeningBalance), "got %s", balance.OpeningBalance)
	assert.True(t, dec("200").Equal(balance.Income))
	assert.True(t, dec("80").Equal(balance.Expense))
	assert.True(t, dec("1620").Equal(balance.ClosingBalance), "got %s", balance.ClosingBalance)
}

func TestMonthBalanceFor_InvalidMonth(t *testing.T) {
	_, err := finreport.MonthBalanceFor(nil, nil, "05/2025")
	assert.Error(t, err)
}

func TestDriverStatementFor(t *testing.T) {
	txns := []domain.Transaction{
		// Pending debt from another month still counts, all time.
		{DriverID: "d1", Type: domain.TransactionExpense, Status: domain.TransactionPending, Amount: dec("250"),
			DueDate: date(2025, time.March, 1)},
		{DriverID: "d1", Type: domain.TransactionExpense, Status: domain.TransactionPaid, Amount: dec("100"),
			DueDate: date(2025, time.May, 20)},
		{DriverID: "d1", Type: domain.TransactionIncome, Status: domain.TransactionPaid, Amount: dec("60"),
			DueDate: date(2025, time.May, 5)},
		{DriverID: "d2", Type: domain.TransactionExpense, Status: domain.TransactionPending, Amount: dec("999"),
			DueDate: date(2025, time.May, 10)},
	}

	statement := finreport.DriverStatementFor(txns, "d1", "2025-05")
	assert.True(t, dec("250").Equal(statement.TotalPendingDebt))
	assert.True(t, dec("100").Equal(statement.MonthPaid))
	require.Len(t, statement.History, 2)
	// History sorted ascending by due date.
	assert.Equal(t, date(2025, time.May, 5), statement.History[0].DueDate)
	assert.Equal(t, date(2025, time.May, 20), statement.History[1].DueDate)
}

func TestDREFor(t *testing.T) {
	month := "2025-05"
	txns := []domain.Transaction{
		{Type: domain.TransactionIncome, Status: domain.TransactionPaid, Category: "FREIGHT", Amount: dec("2000"),
			DueDate: date(2025, time.May, 2)},
		{Type: domain.TransactionExpense, Status: domain.TransactionPaid, Category: domain.CategoryFuel, Amount: dec("300"),
			DueDate: date(2025, time.May, 3)},
		{Type: domain.TransactionExpense, Status: domain.TransactionPending, Category: domain.CategoryCommission, Amount: dec("100"),
			DueDate: date(2025, time.May, 4)},
		// Legacy commission caught by the description fallback.
		{Type: domain.TransactionExpense, Status: domain.TransactionPaid, Category: "GENERAL", Description: "Comissão de viagem SP", Amount: dec("50"),
			DueDate: date(2025, time.May, 5)},
		{Type: domain.TransactionExpense, Status: domain.TransactionPaid, Category: "MAINTENANCE", Amount: dec("400"),
			DueDate: date(2025, time.May, 6)},
		{Type: domain.TransactionExpense, Status: domain.TransactionCancelled, Category: domain.CategoryFuel, Amount: dec("999"),
			DueDate: date(2025, time.May, 7)},
	}

	report := finreport.DREFor(txns, month)
	assert.True(t, dec("2000").Equal(report.Revenue))
	assert.True(t, dec("450").Equal(report.VariableCosts), "got %s", report.VariableCosts)
	assert.True(t, dec("1550").Equal(report.ContributionMargin))
	assert.True(t, dec("400").Equal(report.FixedCosts))
	assert.True(t, dec("1150").Equal(report.Result))
}

func TestPercentOfRevenue_ZeroRevenue(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(finreport.PercentOfRevenue(dec("100"), decimal.Zero)))
	assert.True(t, dec("25").Equal(finreport.PercentOfRevenue(dec("50"), dec("200"))))
}

func TestBestAndWorstTrips(t *testing.T) {
	trips := []domain.Trip{
		{TripID: "t1", Status: domain.TripCompleted, FreightAmount: dec("1000"), FuelAmount: dec("200"), ExtraExpensesAmount: dec("50"), CommissionAmount: dec("100")},
		{TripID: "t2", Status: domain.TripCompleted, FreightAmount: dec("500"), FuelAmount: dec("400")},
		{TripID: "t3", Status: domain.TripInProgress, FreightAmount: dec("9000")},
	}

	best := finreport.BestTrips(trips, 5)
	require.Len(t, best, 2)
	assert.Equal(t, "t1", best[0].TripID)
	assert.True(t, dec("650").Equal(best[0].Profit), "got %s", best[0].Profit)

	worst := finreport.WorstTrips(trips, 1)
	require.Len(t, worst, 1)
	assert.Equal(t, "t2", worst[0].TripID)
	assert.True(t, dec("100").Equal(worst[0].Profit))
}
