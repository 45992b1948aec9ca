// Package finreport holds the pure aggregation functions behind every derived
// financial figure. All functions consume full in-memory lists and perform no
// I/O; callers refetch and recompute whenever the underlying data changes.
package finreport

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// monthLayout is the month key format used across all monthly figures.
const monthLayout = "2006-01"

// SignedAmount returns the amount signed by transaction type: INCOME is
// positive, EXPENSE negative.
func SignedAmount(txn domain.Transaction) decimal.Decimal {
	if txn.Type == domain.TransactionExpense {
		return txn.Amount.Neg()
	}
	return txn.Amount
}

// MonthKey formats a date as its "YYYY-MM" month key.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}

// ParseMonth parses a "YYYY-MM" month key into the first instant of that month.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t, nil
}

func inMonth(date time.Time, month string) bool {
	return MonthKey(date) == month
}

func counts(txn domain.Transaction) bool {
	return txn.Status != domain.TransactionCancelled
}

// CurrentBalance is the sum of all account initial balances plus the signed
// sum of all PAID transactions.
func CurrentBalance(accounts []domain.FinancialAccount, txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.InitialBalance)
	}
	for _, t := range txns {
		if t.Status == domain.TransactionPaid {
			total = total.Add(SignedAmount(t))
		}
	}
	return total
}

// PendingTotal sums PENDING transactions of the given type.
func PendingTotal(txns []domain.Transaction, typ domain.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Status == domain.TransactionPending && t.Type == typ {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Summary computes the dashboard headline figures.
func Summary(accounts []domain.FinancialAccount, txns []domain.Transaction) domain.FinanceSummary {
	return domain.FinanceSummary{
		CurrentBalance:     CurrentBalance(accounts, txns),
		PendingPayables:    PendingTotal(txns, domain.TransactionExpense),
		PendingReceivables: PendingTotal(txns, domain.TransactionIncome),
	}
}

/// AccountBalances derives the running balance of each account: initial balance
// plus the signed sum of PAID transactions referencing it.
func AccountBalances(accounts []domain.FinancialAccount, txns []domain.Transaction) []domain.AccountBalance {
	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		balance := a.InitialBalance
		for _, t := range txns {
			if t.Status == domain.TransactionPaid && t.AccountID == a.AccountID {
				balance = balance.Add(SignedAmount(t))
			}
		}
		balances = append(balances, domain.AccountBalance{
			AccountID: a.AccountID,
			Name:      a.Name,
			Kind:      a.Kind,
			Balance:   balance,
		})
	}
	return balances
}

// CategoryBreakdown groups expense transactions by category and sorts the
// totals in descending order.
func CategoryBreakdown(txns []domain.Transaction) []domain.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range txns {
		if t.Type != domain.TransactionExpense || !counts(t) {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	result := make([]domain.CategoryTotal, 0, len(order))
	for _, cat := range order {
		result = append(result, domain.CategoryTotal{Category: cat, Total: totals[cat]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result
}

// VehicleProfits computes income, expense and profit per vehicle. Vehicles
// with no activity on either side are excluded.
func VehicleProfits(vehicles []domain.Vehicle, txns []domain.Transaction) []domain.VehicleProfit {
	result := make([]domain.VehicleProfit, 0, len(vehicles))
	for _, v := range vehicles {
		income := decimal.Zero
		expense := decimal.Zero
		active := false
		for _, t := range txns {
			if t.VehicleID != v.VehicleID || !counts(t) {
				continue
			}
			active = true
			if t.Type == domain.TransactionIncome {
				income = income.Add(t.Amount)
			} else {
				expense = expense.Add(t.Amount)
			}
		}
		if !active {
			continue
		}
		result = append(result, domain.VehicleProfit{
			VehicleID: v.VehicleID,
			Plate:     v.Plate,
			Income:    income,
			Expense:   expense,
			Profit:    income.Sub(expense),
		})
	}
	return result
}

// MonthlyTrend returns totals for the trailing six calendar months including
// the current one, oldest first. Transactions are bucketed by due-date month
// regardless of paid status.
func MonthlyTrend(txns []domain.Transaction, now time.Time) []domain.MonthlyTotal {
	result := make([]domain.MonthlyTotal, 0, 6)
	for i := 5; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		month := MonthKey(monthStart)
		income := decimal.Zero
		expense := decimal.Zero
		for _, t := range txns {
			if !inMonth(t.DueDate, month) || !counts(t) {
				continue
			}
			if t.Type == domain.TransactionIncome {
				income = income.Add(t.Amount)
			} else {
				expense = expense.Add(t.Amount)
			}
		}
		result = append(result, domain.MonthlyTotal{
			Month:   month,
			Income:  income,
			Expense: expense,
			Profit:  income.Sub(expense),
		})
	}
	return result
}

// MonthBalanceFor projects the opening and closing balance of a month.
// The opening balance is cash basis: initial balances plus PAID transactions
// whose payment date precedes the month. The in-month delta is due-date basis
// regardless of paid status. The asymmetry is intentional and must be kept.
func MonthBalanceFor(accounts []domain.FinancialAccount, txns []domain.Transaction, month string) (domain.MonthBalance, error) {
	firstOfMonth, err := ParseMonth(month)
	if err != nil {
		return domain.MonthBalance{}, err
	}

	opening := decimal.Zero
	for _, a := range accounts {
		opening = opening.Add(a.InitialBalance)
	}
	for _, t := range txns {
		if t.Status == domain.TransactionPaid && t.PaymentDate != nil && t.PaymentDate.Before(firstOfMonth) {
			opening = opening.Add(SignedAmount(t))
		}
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		if !inMonth(t.DueDate, month) || !counts(t) {
			continue
		}
		if t.Type == domain.TransactionIncome {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	return domain.MonthBalance{
		Month:          month,
		OpeningBalance: opening,
		Income:         income,
		Expense:        expense,
		ClosingBalance: opening.Add(income).Sub(expense),
	}, nil
}

// DriverStatementFor builds a driver's month statement. Pending debt covers
// all time; paid total and history are restricted to the month by due date.
// History keeps every status, sorted ascending by due date.
func DriverStatementFor(txns []domain.Transaction, driverID, month string) domain.DriverStatement {
	pendingDebt := decimal.Zero
	monthPaid := decimal.Zero
	history := make([]domain.Transaction, 0)

	for _, t := range txns {
		if t.DriverID != driverID {
			continue
		}
		if t.Type == domain.TransactionExpense && t.Status == domain.TransactionPending {
			pendingDebt = pendingDebt.Add(t.Amount)
		}
		if !inMonth(t.DueDate, month) {
			continue
		}
		if t.Type == domain.TransactionExpense && t.Status == domain.TransactionPaid {
			monthPaid = monthPaid.Add(t.Amount)
		}
		history = append(history, t)
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].DueDate.Before(history[j].DueDate)
	})

	return domain.DriverStatement{
		DriverID:         driverID,
		Month:            month,
		TotalPendingDebt: pendingDebt,
		MonthPaid:        monthPaid,
		History:          history,
	}
}

// isCommissionExpense matches the COMMISSION category plus the legacy records
// that only carry the word in their description.
func isCommissionExpense(t domain.Transaction) bool {
	if t.Category == domain.CategoryCommission {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), "comissão")
}

// DREFor builds the simplified profit and loss statement for a month.
// Variable costs are fuel and commission expenses; commissions recorded under
// another category are caught by the description substring fallback.
func DREFor(txns []domain.Transaction, month string) domain.DREReport {
	revenue := decimal.Zero
	variable := decimal.Zero
	fixed := decimal.Zero

	for _, t := range txns {
		if !inMonth(t.DueDate, month) || !counts(t) {
			continue
		}
		switch t.Type {
		case domain.TransactionIncome:
			revenue = revenue.Add(t.Amount)
		case domain.TransactionExpense:
			if t.Category == domain.CategoryFuel || isCommissionExpense(t) {
				variable = variable.Add(t.Amount)
			} else {
				fixed = fixed.Add(t.Amount)
			}
		}
	}

	margin := revenue.Sub(variable)
	return domain.DREReport{
		Month:              month,
		Revenue:            revenue,
		VariableCosts:      variable,
		ContributionMargin: margin,
		FixedCosts:         fixed,
		Result:             margin.Sub(fixed),
	}
}

// PercentOfRevenue returns amount/revenue as a percentage, or zero when
// revenue is zero.
func PercentOfRevenue(amount, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return amount.Div(revenue).Mul(decimal.NewFromInt(100))
}

func tripProfits(trips []domain.Trip) []domain.TripProfit {
	result := make([]domain.TripProfit, 0, len(trips))
	for _, t := range trips {
		if t.Status != domain.TripCompleted {
			continue
		}
		result = append(result, domain.TripProfit{
			TripID:        t.TripID,
			VehicleID:     t.VehicleID,
			StartLocation: t.StartLocation,
			EndLocation:   t.EndLocation,
			FreightAmount: t.FreightAmount,
			Profit:        t.Profit(),
		})
	}
	return result
}

// BestTrips ranks completed trips by profit, highest first, truncated to n.
func BestTrips(trips []domain.Trip, n int) []domain.TripProfit {
	ranked := tripProfits(trips)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Profit.GreaterThan(ranked[j].Profit)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// WorstTrips ranks completed trips by profit, lowest first, truncated to n.
func WorstTrips(trips []domain.Trip, n int) []domain.TripProfit {
	ranked := tripProfits(trips)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Profit.LessThan(ranked[j].Profit)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
