package entity

import "time"

// Estados de una solicitud de vacaciones.
// approved y completed descuentan días del saldo; requested cuenta como pendiente.
const (
	VacationStatusRequested = "requested"
	VacationStatusApproved  = "approved"
	VacationStatusRejected  = "rejected"
	VacationStatusCompleted = "completed"
)

// Vacation representa una solicitud de vacaciones de un trabajador.
type Vacation struct {
	ID        string
	WorkerID  string
	StartDate time.Time
	EndDate   time.Time
	TotalDays int // >= 1
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
