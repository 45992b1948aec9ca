package dto

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to register a supplier.
type CreateSupplierRequest struct {
	Name     string                  `json:"name" binding:"required"`
	Category domain.SupplierCategory `json:"category" binding:"required,oneof=FUEL MAINTENANCE PARTS SERVICE INSURANCE GENERAL"`
	Phone    string                  `json:"phone"`
	Notes    string                  `json:"notes"`
}

// UpdateSupplierRequest defines the fields allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name     *string                  `json:"name"`
	Category *domain.SupplierCategory `json:"category"`
	Phone    *string                  `json:"phone"`
	Notes    *string                  `json:"notes"`
}

// SupplierResponse mirrors domain.Supplier.
type SupplierResponse struct {
	SupplierID    string                  `json:"supplierID"`
	Name          string                  `json:"name"`
	Category      domain.SupplierCategory `json:"category"`
	Phone         string                  `json:"phone,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
}

// ToSupplierResponse converts a domain.Supplier.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		Name:          s.Name,
		Category:      s.Category,
		Phone:         s.Phone,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToListSupplierResponse converts a slice of suppliers.
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return res
}

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}

// UpdateCustomerRequest defines the fields allowed for updating a customer.
type UpdateCustomerRequest struct {
	Name     *string `json:"name"`
	Document *string `json:"document"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
}

// CustomerResponse mirrors domain.Customer.
type CustomerResponse struct {
	CustomerID    string    `json:"customerID"`
	Name          string    `json:"name"`
	Document      string    `json:"document,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		Name:          c.Name,
		Document:      c.Document,
		Phone:         c.Phone,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of customers.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
