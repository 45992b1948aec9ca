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
)

type vehicleService struct {
	vehicleRepo portsrepo.VehicleRepository
}

// NewVehicleService creates the vehicle registry service.
func NewVehicleService(vehicleRepo portsrepo.VehicleRepository) portssvc.VehicleSvcFacade {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, userID string) (*domain.Vehicle, error) {
	vehicle := domain.Vehicle{
		VehicleID:   uuid.NewString(),
		VehicleType: req.VehicleType,
		Plate:       req.Plate,
		AuditFields: newAuditFields(userID, time.Now()),
	}

	switch req.VehicleType {
	case domain.VehicleTruck:
		if req.Model == "" {
			return nil, fmt.Errorf("%w: model is required for trucks", apperrors.ErrValidation)
		}
		vehicle.Model = req.Model
		vehicle.CurrentKm = req.CurrentKm
		vehicle.NextOilChangeKm = req.NextOilChangeKm
		vehicle.DefaultDriverID = req.DefaultDriverID
	case domain.VehicleTrailer:
		if req.Axles <= 0 {
			return nil, fmt.Errorf("%w: axles is required for trailers", apperrors.ErrValidation)
		}
		vehicle.Axles = req.Axles
		vehicle.LastLubricationDate = req.LastLubricationDate
	default:
		return nil, fmt.Errorf("%w: unknown vehicle type %q", apperrors.ErrValidation, req.VehicleType)
	}

	vehicle.DocumentURL = req.DocumentURL
	vehicle.Photos = req.Photos

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	return s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListVehicles(ctx)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, userID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.Plate != nil {
		vehicle.Plate = *req.Plate
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.CurrentKm != nil {
		vehicle.CurrentKm = *req.CurrentKm
	}
	if req.NextOilChangeKm != nil {
		vehicle.NextOilChangeKm = *req.NextOilChangeKm
	}
	if req.Axles != nil {
		vehicle.Axles = *req.Axles
	}
	if req.LastLubricationDate != nil {
		vehicle.LastLubricationDate = req.LastLubricationDate
	}
	if req.DefaultDriverID != nil {
		vehicle.DefaultDriverID = *req.DefaultDriverID
	}
	if req.DocumentURL != nil {
		vehicle.DocumentURL = *req.DocumentURL
	}
	if req.Photos != nil {
		vehicle.Photos = req.Photos
	}
	touch(&vehicle.AuditFields, userID, time.Now())

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// UpdateTruckKm advances a truck's odometer. The odometer never moves
// backwards.
func (s *vehicleService) UpdateTruckKm(ctx context.Context, vehicleID string, currentKm int64, userID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsTruck() {
		return nil, fmt.Errorf("%w: odometer updates only apply to trucks", apperrors.ErrValidation)
	}
	if currentKm < vehicle.CurrentKm {
		return nil, fmt.Errorf("%w: odometer cannot move backwards (current %d, got %d)", apperrors.ErrValidation, vehicle.CurrentKm, currentKm)
	}

	vehicle.CurrentKm = currentKm
	touch(&vehicle.AuditFields, userID, time.Now())

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	return s.vehicleRepo.DeleteVehicle(ctx, vehicleID)
}
