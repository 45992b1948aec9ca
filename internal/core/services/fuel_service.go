package services

import (
	"context"
	"fmt"
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/google/uuid"
)

type fuelService struct {
	fuelRepo    portsrepo.FuelEntryRepository
	vehicleRepo portsrepo.VehicleRepository
}

// NewFuelService creates the fuel entry service.
func NewFuelService(fuelRepo portsrepo.FuelEntryRepository, vehicleRepo portsrepo.VehicleRepository) portssvc.FuelSvcFacade {
	return &fuelService{fuelRepo: fuelRepo, vehicleRepo: vehicleRepo}
}

// CreateFuelEntry records a fuel purchase. With CreateTransaction set, the
// linked FUEL expense is written atomically with the entry; when the mileage
// advances a truck's odometer, that update rides the same transaction.
func (s *fuelService) CreateFuelEntry(ctx context.Context, req dto.CreateFuelEntryRequest, userID string) (*domain.FuelEntry, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s: %w", req.VehicleID, err)
	}

	now := time.Now()
	entry := domain.FuelEntry{
		FuelEntryID:   uuid.NewString(),
		VehicleID:     req.VehicleID,
		Date:          req.Date,
		Liters:        req.Liters,
		PricePerLiter: req.PricePerLiter,
		TotalCost:     req.TotalCost,
		Mileage:       req.Mileage,
		SupplierID:    req.SupplierID,
		AuditFields:   newAuditFields(userID, now),
	}

	var txn *domain.Transaction
	if req.CreateTransaction {
		txn = &domain.Transaction{
			TransactionID: uuid.NewString(),
			Type:          domain.TransactionExpense,
			Status:        domain.TransactionPaid,
			Amount:        req.TotalCost,
			Description:   fmt.Sprintf("Abastecimento %s", vehicle.Plate),
			Category:      domain.CategoryFuel,
			DueDate:       req.Date,
			PaymentDate:   &req.Date,
			AccountID:     req.AccountID,
			VehicleID:     req.VehicleID,
			SupplierID:    req.SupplierID,
			AuditFields:   newAuditFields(userID, now),
		}
		entry.TransactionID = txn.TransactionID
	}

	var kmUpdate *portsrepo.TruckKmUpdate
	if vehicle.IsTruck() && req.Mileage > vehicle.CurrentKm {
		kmUpdate = &portsrepo.TruckKmUpdate{VehicleID: vehicle.VehicleID, CurrentKm: req.Mileage}
	}

	if err := s.fuelRepo.SaveFuelEntryWithTransaction(ctx, entry, txn, kmUpdate); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *fuelService) ListFuelEntries(ctx context.Context) ([]domain.FuelEntry, error) {
	return s.fuelRepo.ListFuelEntries(ctx)
}

func (s *fuelService) ListFuelEntriesByVehicle(ctx context.Context, vehicleID string) ([]domain.FuelEntry, error) {
	return s.fuelRepo.ListFuelEntriesByVehicle(ctx, vehicleID)
}

func (s *fuelService) DeleteFuelEntry(ctx context.Context, fuelEntryID string) error {
	return s.fuelRepo.DeleteFuelEntry(ctx, fuelEntryID)
}
