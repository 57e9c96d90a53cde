package entity

import "time"

// Vehicle representa un vehículo de cliente atendido en el taller.
type Vehicle struct {
	ID           string
	LicensePlate string
	Brand        string
	Model        string
	Year         int
	OwnerName    string
	OwnerPhone   string
	CreatedAt    time.Time
}
