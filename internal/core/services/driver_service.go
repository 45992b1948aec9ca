package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frotaops/frota_backend/internal/apperrors"
	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/utils"
	"github.com/google/uuid"
)

type driverService struct {
	driverRepo portsrepo.DriverRepository
}

// NewDriverService creates the driver registry and credential service.
func NewDriverService(driverRepo portsrepo.DriverRepository) portssvc.DriverSvcFacade {
	return &driverService{driverRepo: driverRepo}
}

func (s *driverService) CreateDriver(ctx context.Context, req dto.CreateDriverRequest, userID string) (*domain.Driver, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	driver := domain.Driver{
		DriverID:      uuid.NewString(),
		Name:          req.Name,
		CPF:           req.CPF,
		PasswordHash:  hash,
		CNHNumber:     req.CNHNumber,
		CNHCategory:   req.CNHCategory,
		CNHExpiration: req.CNHExpiration,
		AuditFields:   newAuditFields(userID, time.Now()),
	}

	if err := s.driverRepo.SaveDriver(ctx, driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *driverService) GetDriverByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	return s.driverRepo.FindDriverByID(ctx, driverID)
}

func (s *driverService) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	return s.driverRepo.ListDrivers(ctx)
}

func (s *driverService) UpdateDriver(ctx context.Context, driverID string, req dto.UpdateDriverRequest, userID string) (*domain.Driver, error) {
	driver, err := s.driverRepo.FindDriverByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		driver.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		driver.PasswordHash = hash
	}
	if req.CNHNumber != nil {
		driver.CNHNumber = *req.CNHNumber
	}
	if req.CNHCategory != nil {
		driver.CNHCategory = *req.CNHCategory
	}
	if req.CNHExpiration != nil {
		driver.CNHExpiration = *req.CNHExpiration
	}
	touch(&driver.AuditFields, userID, time.Now())

	if err := s.driverRepo.UpdateDriver(ctx, *driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *driverService) DeleteDriver(ctx context.Context, driverID string) error {
	return s.driverRepo.DeleteDriver(ctx, driverID)
}

// VerifyCredentials authenticates a driver by CPF and password. A missing
// driver and a wrong password are indistinguishable to the caller.
func (s *driverService) VerifyCredentials(ctx context.Context, cpf, password string) (*domain.Driver, error) {
	driver, err := s.driverRepo.FindDriverByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, driver.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return driver, nil
}
