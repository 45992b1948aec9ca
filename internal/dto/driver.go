package dto

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// CreateDriverRequest defines the data needed to register a driver.
type CreateDriverRequest struct {
	Name          string    `json:"name" binding:"required"`
	CPF           string    `json:"cpf" binding:"required"`
	Password      string    `json:"password" binding:"required,min=6"`
	CNHNumber     string    `json:"cnhNumber" binding:"required"`
	CNHCategory   string    `json:"cnhCategory" binding:"required"`
	CNHExpiration time.Time `json:"cnhExpiration" binding:"required"`
}

// UpdateDriverRequest defines the fields allowed for updating a driver.
// Password, when provided, is re-hashed by the service.
type UpdateDriverRequest struct {
	Name          *string    `json:"name"`
	Password      *string    `json:"password"`
	CNHNumber     *string    `json:"cnhNumber"`
	CNHCategory   *string    `json:"cnhCategory"`
	CNHExpiration *time.Time `json:"cnhExpiration"`
}

// DriverResponse mirrors domain.Driver plus the derived license status.
type DriverResponse struct {
	DriverID      string               `json:"driverID"`
	Name          string               `json:"name"`
	CPF           string               `json:"cpf"`
	CNHNumber     string               `json:"cnhNumber"`
	CNHCategory   string               `json:"cnhCategory"`
	CNHExpiration time.Time            `json:"cnhExpiration"`
	LicenseStatus domain.LicenseStatus `json:"licenseStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// ToDriverResponse converts a domain.Driver and its derived license status.
func ToDriverResponse(d *domain.Driver, status domain.LicenseStatus) DriverResponse {
	return DriverResponse{
		DriverID:      d.DriverID,
		Name:          d.Name,
		CPF:           d.CPF,
		CNHNumber:     d.CNHNumber,
		CNHCategory:   d.CNHCategory,
		CNHExpiration: d.CNHExpiration,
		LicenseStatus: status,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// LoginRequest carries the companion app credentials.
type LoginRequest struct {
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued bearer token.
type LoginResponse struct {
	Token    string         `json:"token"`
	Driver   DriverResponse `json:"driver"`
	TokenTTL string         `json:"tokenTTL"`
}
