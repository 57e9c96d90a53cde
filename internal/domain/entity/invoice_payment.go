package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchPaymentMethod es el método con el que se etiquetan los pagos
// sintetizados por la conciliación masiva de facturas.
const BatchPaymentMethod = "Batch Reconciliation"

// InvoicePayment representa un pago aplicado a una factura de proveedor
// (ledger hijo de Invoice).
type InvoicePayment struct {
	ID            string
	InvoiceID     string
	PaymentAmount decimal.Decimal
	PaymentDate   time.Time
	PaymentMethod string
	Reference     string
	Notes         string
	CreatedAt     time.Time
}
