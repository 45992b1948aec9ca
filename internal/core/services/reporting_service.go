package services

import (
	"context"
	"fmt"
	"time"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/utils/finreport"
)

// tripRankingSize caps the best/worst trip rankings.
const tripRankingSize = 5

type reportingService struct {
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
	vehicleRepo     portsrepo.VehicleRepository
	tripRepo        portsrepo.TripRepository
	driverRepo      portsrepo.DriverRepository
}

// NewReportingService creates the reporting facade. Every figure is recomputed
// from freshly fetched collections on each call.
func NewReportingService(
	accountRepo portsrepo.AccountRepository,
	transactionRepo portsrepo.TransactionRepository,
	vehicleRepo portsrepo.VehicleRepository,
	tripRepo portsrepo.TripRepository,
	driverRepo portsrepo.DriverRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		vehicleRepo:     vehicleRepo,
		tripRepo:        tripRepo,
		driverRepo:      driverRepo,
	}
}

func (s *reportingService) Summary(ctx context.Context) (*domain.FinanceSummary, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	summary := finreport.Summary(accounts, txns)
	return &summary, nil
}

func (s *reportingService) AccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return finreport.AccountBalances(accounts, txns), nil
}

func (s *reportingService) CategoryBreakdown(ctx context.Context) ([]domain.CategoryTotal, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return finreport.CategoryBreakdown(txns), nil
}

func (s *reportingService) VehicleProfits(ctx context.Context) ([]domain.VehicleProfit, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return finreport.VehicleProfits(vehicles, txns), nil
}

func (s *reportingService) MonthlyTrend(ctx context.Context) ([]domain.MonthlyTotal, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return finreport.MonthlyTrend(txns, time.Now()), nil
}

func (s *reportingService) MonthBalance(ctx context.Context, month string) (*domain.MonthBalance, error) {
	if _, err := finreport.ParseMonth(month); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := finreport.MonthBalanceFor(accounts, txns, month)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (s *reportingService) DriverStatement(ctx context.Context, driverID, month string) (*domain.DriverStatement, error) {
	if _, err := finreport.ParseMonth(month); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if _, err := s.driverRepo.FindDriverByID(ctx, driverID); err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	statement := finreport.DriverStatementFor(txns, driverID, month)
	return &statement, nil
}

func (s *reportingService) DRE(ctx context.Context, month string) (*domain.DREReport, error) {
	if _, err := finreport.ParseMonth(month); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	report := finreport.DREFor(txns, month)
	return &report, nil
}

func (s *reportingService) BestTrips(ctx context.Context) ([]domain.TripProfit, error) {
	trips, err := s.tripRepo.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	return finreport.BestTrips(trips, tripRankingSize), nil
}

func (s *reportingService) WorstTrips(ctx context.Context) ([]domain.TripProfit, error) {
	trips, err := s.tripRepo.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	return finreport.WorstTrips(trips, tripRankingSize), nil
}
