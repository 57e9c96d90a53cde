package billing

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repos de pagos y facturas. Garantiza que el ledger de pagos y el total
// pagado de la factura muten de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		paymentRepo repository.InvoicePaymentRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoiceWithPayments agrupa una factura con su historial de pagos para el
// estado de cuenta del proveedor.
type InvoiceWithPayments struct {
	Invoice  *entity.Invoice
	Payments []*entity.InvoicePayment
}

// StatementPDFGenerator genera el PDF del estado de cuenta de un proveedor.
type StatementPDFGenerator interface {
	GenerateSupplierStatement(ctx context.Context, supplier *entity.Supplier, invoices []InvoiceWithPayments) ([]byte, error)
}
