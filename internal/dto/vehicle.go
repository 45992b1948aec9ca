package dto

import (
	"time"

	"github.com/frotaops/frota_backend/internal/core/domain"
)

// CreateVehicleRequest defines the data needed to register a vehicle.
// Truck fields are required when vehicleType is TRUCK, trailer fields when it
// is TRAILER; the service enforces the split.
type CreateVehicleRequest struct {
	VehicleType domain.VehicleType `json:"vehicleType" binding:"required,oneof=TRUCK TRAILER"`
	Plate       string             `json:"plate" binding:"required"`

	Model           string `json:"model"`
	CurrentKm       int64  `json:"currentKm"`
	NextOilChangeKm int64  `json:"nextOilChangeKm"`

	Axles               int        `json:"axles"`
	LastLubricationDate *time.Time `json:"lastLubricationDate"`

	DefaultDriverID string   `json:"defaultDriverID"`
	DocumentURL     string   `json:"documentURL"`
	Photos          []string `json:"photos"`
}

// UpdateVehicleRequest defines the fields allowed for updating a vehicle.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateVehicleRequest struct {
	Plate               *string    `json:"plate"`
	Model               *string    `json:"model"`
	CurrentKm           *int64     `json:"currentKm"`
	NextOilChangeKm     *int64     `json:"nextOilChangeKm"`
	Axles               *int       `json:"axles"`
	LastLubricationDate *time.Time `json:"lastLubricationDate"`
	DefaultDriverID     *string    `json:"defaultDriverID"`
	DocumentURL         *string    `json:"documentURL"`
	Photos              []string   `json:"photos"`
}

// UpdateTruckKmRequest advances a truck's odometer.
type UpdateTruckKmRequest struct {
	CurrentKm int64 `json:"currentKm" binding:"required"`
}

// VehicleResponse mirrors domain.Vehicle.
type VehicleResponse struct {
	VehicleID   string             `json:"vehicleID"`
	VehicleType domain.VehicleType `json:"vehicleType"`
	Plate       string             `json:"plate"`

	Model           string `json:"model,omitempty"`
	CurrentKm       int64  `json:"currentKm,omitempty"`
	NextOilChangeKm int64  `json:"nextOilChangeKm,omitempty"`

	Axles               int        `json:"axles,omitempty"`
	LastLubricationDate *time.Time `json:"lastLubricationDate,omitempty"`

	DefaultDriverID string    `json:"defaultDriverID,omitempty"`
	DocumentURL     string    `json:"documentURL,omitempty"`
	Photos          []string  `json:"photos,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
}

// ToVehicleResponse converts a domain.Vehicle to its response DTO.
func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:           v.VehicleID,
		VehicleType:         v.VehicleType,
		Plate:               v.Plate,
		Model:               v.Model,
		CurrentKm:           v.CurrentKm,
		NextOilChangeKm:     v.NextOilChangeKm,
		Axles:               v.Axles,
		LastLubricationDate: v.LastLubricationDate,
		DefaultDriverID:     v.DefaultDriverID,
		DocumentURL:         v.DocumentURL,
		Photos:              v.Photos,
		CreatedAt:           v.CreatedAt,
		LastUpdatedAt:       v.LastUpdatedAt,
	}
}

// ToListVehicleResponse converts a slice of vehicles.
func ToListVehicleResponse(vehicles []domain.Vehicle) []VehicleResponse {
	res := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		res[i] = ToVehicleResponse(&vehicles[i])
	}
	return res
}
