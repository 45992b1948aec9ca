package services

import (
	"context"
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
	portsrepo "github.com/frotaops/frota_backend/internal/core/ports/repositories"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/google/uuid"
)

type supplierService struct {
	supplierRepo portsrepo.SupplierRepository
}

// NewSupplierService creates the supplier registry service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepository) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	supplier := domain.Supplier{
		SupplierID:  uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Phone:       req.Phone,
		Notes:       req.Notes,
		AuditFields: newAuditFields(userID, time.Now()),
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx)
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Category != nil {
		supplier.Category = *req.Category
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}
	touch(&supplier.AuditFields, userID, time.Now())

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	return s.supplierRepo.DeleteSupplier(ctx, supplierID)
}

type customerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates the customer registry service.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        req.Name,
		Document:    req.Document,
		Phone:       req.Phone,
		Notes:       req.Notes,
		AuditFields: newAuditFields(userID, time.Now()),
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Document != nil {
		customer.Document = *req.Document
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	touch(&customer.AuditFields, userID, time.Now())

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.customerRepo.DeleteCustomer(ctx, customerID)
}
