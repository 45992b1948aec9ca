package services

import (
	"context"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// ReportingSvcFacade computes every derived financial figure. All figures are
// recomputed from freshly fetched full collections on every call.
type ReportingSvcFacade interface {
	Summary(ctx context.Context) (*domain.FinanceSummary, error)
	AccountBalances(ctx context.Context) ([]domain.AccountBalance, error)
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryTotal, error)
	VehicleProfits(ctx context.Context) ([]domain.VehicleProfit, error)
	MonthlyTrend(ctx context.Context) ([]domain.MonthlyTotal, error)
	MonthBalance(ctx context.Context, month string) (*domain.MonthBalance, error)
	DriverStatement(ctx context.Context, driverID, month string) (*domain.DriverStatement, error)
	DRE(ctx context.Context, month string) (*domain.DREReport, error)
	BestTrips(ctx context.Context) ([]domain.TripProfit, error)
	WorstTrips(ctx context.Context) ([]domain.TripProfit, error)
}
