package repository

import "github.com/jhoicas/taller-api/internal/domain/entity"

// InvoicePaymentRepository define el puerto de persistencia para InvoicePayment.
type InvoicePaymentRepository interface {
	Create(payment *entity.InvoicePayment) error
	GetByID(id string) (*entity.InvoicePayment, error)
	List(limit, offset int) ([]*entity.InvoicePayment, error)
	ListByInvoice(invoiceID string) ([]*entity.InvoicePayment, error)
	Delete(id string) (bool, error)
}
