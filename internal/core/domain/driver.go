package domain

import "time"

// LicenseStatus classifies a driver's CNH against the current date.
type LicenseStatus string

const (
	LicenseExpired      LicenseStatus = "EXPIRED"
	LicenseExpiringSoon LicenseStatus = "EXPIRING_SOON" // less than 30 days left
	LicenseValid        LicenseStatus = "VALID"
)

// Driver represents a company driver. Passwords are stored only as bcrypt
// hashes; the hash never leaves the service layer.
type Driver struct {
	DriverID      string    `json:"driverID"`
	Name          string    `json:"name"`
	CPF           string    `json:"cpf"`
	PasswordHash  string    `json:"-"`
	CNHNumber     string    `json:"cnhNumber"`
	CNHCategory   string    `json:"cnhCategory"`
	CNHExpiration time.Time `json:"cnhExpiration"`
	AuditFields
}
