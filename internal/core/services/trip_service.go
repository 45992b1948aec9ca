package services

import (
	"context"
	"fmt"
	"time"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// commissionRate is the fixed driver commission on the freight amount.
var commissionRate = decimal.NewFromFloat(0.10)

type tripService struct {
	tripRepo    portsrepo.TripRepository
	vehicleRepo portsrepo.VehicleRepository
}

// NewTripService creates the trip lifecycle service.
func NewTripService(tripRepo portsrepo.TripRepository, vehicleRepo portsrepo.VehicleRepository) portssvc.TripSvcFacade {
	return &tripService{tripRepo: tripRepo, vehicleRepo: vehicleRepo}
}

func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, userID string) (*domain.Trip, error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, req.VehicleID); err != nil {
		return nil, fmt.Errorf("vehicle %s: %w", req.VehicleID, err)
	}

	trip := domain.Trip{
		TripID:              uuid.NewString(),
		VehicleID:           req.VehicleID,
		DriverID:            req.DriverID,
		CustomerID:          req.CustomerID,
		Status:              domain.TripInProgress,
		StartLocation:       req.StartLocation,
		StartKm:             req.StartKm,
		StartDate:           req.StartDate,
		FreightAmount:       decimal.Zero,
		ExtraExpensesAmount: decimal.Zero,
		FuelAmount:          decimal.Zero,
		CommissionAmount:    decimal.Zero,
		AuditFields:         newAuditFields(userID, time.Now()),
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *tripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	return s.tripRepo.FindTripByID(ctx, tripID)
}

func (s *tripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	return s.tripRepo.ListTrips(ctx)
}

// CompleteTrip finishes an in-progress trip and posts the generated financial
// entries (freight income, extra trip expenses, driver commission) atomically
// with the trip update. The commission is fixed at 10% of the freight amount.
func (s *tripService) CompleteTrip(ctx context.Context, tripID string, req dto.CompleteTripRequest, userID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != domain.TripInProgress {
		return nil, fmt.Errorf("%w: trip is not in progress", apperrors.ErrValidation)
	}
	if req.EndKm < trip.StartKm {
		return nil, fmt.Errorf("%w: end km cannot precede start km", apperrors.ErrValidation)
	}
	if req.FreightAmount.IsNegative() || req.ExtraExpensesAmount.IsNegative() || req.FuelAmount.IsNegative() {
		return nil, fmt.Errorf("%w: amounts cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	trip.Status = domain.TripCompleted
	trip.EndLocation = req.EndLocation
	trip.EndKm = req.EndKm
	trip.EndDate = &req.EndDate
	trip.FreightAmount = req.FreightAmount
	trip.ExtraExpensesAmount = req.ExtraExpensesAmount
	trip.FuelAmount = req.FuelAmount
	trip.CommissionAmount = decimal.Zero
	if req.PayCommission {
		trip.CommissionAmount = req.FreightAmount.Mul(commissionRate)
	}
	touch(&trip.AuditFields, userID, now)

	var entries []domain.Transaction
	routeLabel := fmt.Sprintf("%s → %s", trip.StartLocation, trip.EndLocation)

	if req.FreightAmount.IsPositive() {
		entries = append(entries, domain.Transaction{
			TransactionID: uuid.NewString(),
			Type:          domain.TransactionIncome,
			Status:        domain.TransactionPending,
			Amount:        req.FreightAmount,
			Description:   fmt.Sprintf("Frete %s", routeLabel),
			Category:      domain.CategoryFreight,
			DueDate:       req.EndDate,
			AccountID:     req.AccountID,
			VehicleID:     trip.VehicleID,
			CustomerID:    trip.CustomerID,
			DriverID:      trip.DriverID,
			TripID:        trip.TripID,
			AuditFields:   newAuditFields(userID, now),
		})
	}
	if req.ExtraExpensesAmount.IsPositive() {
		entries = append(entries, domain.Transaction{
			TransactionID: uuid.NewString(),
			Type:          domain.TransactionExpense,
			Status:        domain.TransactionPending,
			Amount:        req.ExtraExpensesAmount,
			Description:   fmt.Sprintf("Despesas de viagem %s", routeLabel),
			Category:      domain.CategoryTripExpense,
			DueDate:       req.EndDate,
			AccountID:     req.AccountID,
			VehicleID:     trip.VehicleID,
			DriverID:      trip.DriverID,
			TripID:        trip.TripID,
			AuditFields:   newAuditFields(userID, now),
		})
	}
	if req.PayCommission && trip.CommissionAmount.IsPositive() {
		entries = append(entries, domain.Transaction{
			TransactionID: uuid.NewString(),
			Type:          domain.TransactionExpense,
			Status:        domain.TransactionPending,
			Amount:        trip.CommissionAmount,
			Description:   fmt.Sprintf("Comissão de viagem %s", routeLabel),
			Category:      domain.CategoryCommission,
			DueDate:       req.EndDate,
			AccountID:     req.AccountID,
			VehicleID:     trip.VehicleID,
			DriverID:      trip.DriverID,
			TripID:        trip.TripID,
			AuditFields:   newAuditFields(userID, now),
		})
	}

	if err := s.tripRepo.CompleteTripWithEntries(ctx, *trip, entries); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, tripID string) error {
	return s.tripRepo.DeleteTrip(ctx, tripID)
}
