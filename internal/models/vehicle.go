package models

import "time"

// Vehicle is the DB representation of a vehicle row (table: vehicles).
type Vehicle struct {
	VehicleID           string
	VehicleType         string
	Plate               string
	Model               string
	CurrentKm           int64
	NextOilChangeKm     int64
	Axles               int
	LastLubricationDate *time.Time
	DefaultDriverID     string
	DocumentURL         string
	Photos              []string
	AuditFields
}
