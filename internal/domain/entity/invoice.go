package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura de proveedor. Es una proyección derivada de
// PaidAmount vs TotalAmount: 0 -> pending, (0, total) -> partial, >= total -> paid.
// Nunca se asigna a mano salvo en el pago por lotes, que fija ambos campos juntos.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// Invoice representa una factura de proveedor. PaidAmount es un total
// acumulado denormalizado que se mantiene junto con su ledger de pagos
// (InvoicePayment) en la misma transacción.
type Invoice struct {
	ID            string
	InvoiceNumber string
	SupplierID    string
	Description   string
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal // arranca en 0
	PaymentStatus string
	InvoiceDate   time.Time
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PendingAmount devuelve el saldo pendiente de la factura.
func (i *Invoice) PendingAmount() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}
