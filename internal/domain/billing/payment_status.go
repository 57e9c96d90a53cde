// Package billing contiene las reglas de dominio de facturación de
// proveedores: derivación del estado de pago a partir de los montos.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// DerivePaymentStatus deriva el estado de pago de una factura a partir de sus
// montos. Es la única fuente del estado: se recalcula en cada mutación del
// ledger de pagos y nunca se confía en un valor asignado a mano (salvo el
// pago por lotes, que fija paid_amount y estado juntos en la misma transacción).
//
//	paid == 0            -> pending
//	0 < paid < total     -> partial
//	paid >= total        -> paid
func DerivePaymentStatus(paidAmount, totalAmount decimal.Decimal) string {
	switch {
	case paidAmount.GreaterThanOrEqual(totalAmount):
		return entity.PaymentStatusPaid
	case paidAmount.GreaterThan(decimal.Zero):
		return entity.PaymentStatusPartial
	default:
		return entity.PaymentStatusPending
	}
}
