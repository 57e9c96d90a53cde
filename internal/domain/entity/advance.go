package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance representa un adelanto de pago sobre un trabajo (ledger hijo de Job).
// Crear o borrar uno muta Job.AdvanceAmount dentro de la misma transacción.
type Advance struct {
	ID          string
	JobID       string
	Amount      decimal.Decimal
	Description string
	AdvanceDate time.Time
	CreatedAt   time.Time
}
