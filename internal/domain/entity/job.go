package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un trabajo. completed se alcanza manualmente o de forma
// automática cuando los adelantos cubren el total; cancelled es solo manual.
const (
	JobStatusPending    = "pending"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Job representa un trabajo de reparación sobre un vehículo, asignado a un
// trabajador. AdvanceAmount es un total acumulado denormalizado que se
// mantiene en la misma transacción que el ledger de adelantos (Advance).
type Job struct {
	ID            string
	VehicleID     string
	WorkerID      string
	Description   string
	TotalAmount   decimal.Decimal
	AdvanceAmount decimal.Decimal // arranca en 0; suma de adelantos del trabajo
	Status        string
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
