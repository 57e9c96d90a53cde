package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// GetForUpdate obtiene la factura y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Invoice, error)
	GetByNumber(invoiceNumber string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	ListBySupplier(supplierID string) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	// UpdatePayment persiste el total pagado y el estado derivado, en la
	// misma transacción que la mutación del ledger de pagos.
	UpdatePayment(id string, paidAmount decimal.Decimal, paymentStatus string) error
	Delete(id string) (bool, error)
}
