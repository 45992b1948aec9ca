package models

import "time"

// Driver is the DB representation of a driver row (table: drivers).
type Driver struct {
	DriverID      string
	Name          string
	CPF           string
	PasswordHash  string
	CNHNumber     string
	CNHCategory   string
	CNHExpiration time.Time
	AuditFields
}
