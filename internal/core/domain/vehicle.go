package domain

import "time"

// VehicleType discriminates the two vehicle variants. Consumers must switch on
// this tag, never on field presence.
type VehicleType string

const (
	VehicleTruck   VehicleType = "TRUCK"
	VehicleTrailer VehicleType = "TRAILER"
)

// Vehicle represents a registered truck or trailer.
// Truck-only fields: Model, CurrentKm, NextOilChangeKm.
// Trailer-only fields: Axles, LastLubricationDate.
type Vehicle struct {
	VehicleID   string      `json:"vehicleID"`
	VehicleType VehicleType `json:"vehicleType"`
	Plate       string      `json:"plate"`

	Model           string `json:"model,omitempty"`
	CurrentKm       int64  `json:"currentKm,omitempty"`
	NextOilChangeKm int64  `json:"nextOilChangeKm,omitempty"`

	Axles               int        `json:"axles,omitempty"`
	LastLubricationDate *time.Time `json:"lastLubricationDate,omitempty"`

	DefaultDriverID string   `json:"defaultDriverID,omitempty"`
	DocumentURL     string   `json:"documentURL,omitempty"`
	Photos          []string `json:"photos,omitempty"`

	AuditFields
}

// IsTruck reports whether the vehicle is a truck.
func (v Vehicle) IsTruck() bool {
	return v.VehicleType == VehicleTruck
}
