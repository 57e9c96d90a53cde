package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryAdvance representa un anticipo de sueldo, atribuido a una ventana
// de período de pago [PaymentPeriodStart, PaymentPeriodEnd].
type SalaryAdvance struct {
	ID                 string
	WorkerID           string
	Amount             decimal.Decimal
	AdvanceDate        time.Time
	PaymentPeriodStart time.Time
	PaymentPeriodEnd   time.Time
	Notes              string
	CreatedAt          time.Time
}
