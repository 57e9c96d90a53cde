// Package billing contiene los casos de uso de facturas de proveedor: pagos
// transaccionales con estado derivado, conciliación masiva y estado de cuenta.
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/billing"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// PaymentUseCase registra y elimina pagos de facturas de proveedor de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre la factura.
// El estado de pago de la factura siempre se deriva de paid_amount vs
// total_amount, nunca se fija a mano.
type PaymentUseCase struct {
	txRunner    TxRunner
	paymentRepo repository.InvoicePaymentRepository
	invoiceRepo repository.InvoiceRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(txRunner TxRunner, paymentRepo repository.InvoicePaymentRepository, invoiceRepo repository.InvoiceRepository) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

// Create registra un pago y suma su monto a Invoice.PaidAmount en la misma
// transacción, re-derivando el estado de pago.
func (uc *PaymentUseCase) Create(ctx context.Context, invoiceID string, in dto.CreateInvoicePaymentRequest) (*dto.InvoicePaymentResponse, error) {
	if invoiceID == "" || !in.PaymentAmount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	paymentDate := now
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}
	payment := &entity.InvoicePayment{
		ID:            uuid.New().String(),
		InvoiceID:     invoiceID,
		PaymentAmount: in.PaymentAmount,
		PaymentDate:   paymentDate,
		PaymentMethod: in.PaymentMethod,
		Reference:     in.Reference,
		Notes:         in.Notes,
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(paymentRepo repository.InvoicePaymentRepository, invoiceRepo repository.InvoiceRepository) error {
		invoice, err := invoiceRepo.GetForUpdate(invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		newPaid := invoice.PaidAmount.Add(in.PaymentAmount)
		status := billing.DerivePaymentStatus(newPaid, invoice.TotalAmount)
		return invoiceRepo.UpdatePayment(invoice.ID, newPaid, status)
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Delete elimina un pago y descuenta su monto de Invoice.PaidAmount en la
// misma transacción, re-derivando el estado. El pagado nunca baja de cero.
// Retorna (false, nil) si el pago no existe.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := uc.txRunner.Run(ctx, func(paymentRepo repository.InvoicePaymentRepository, invoiceRepo repository.InvoiceRepository) error {
		payment, err := paymentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if payment == nil {
			return nil
		}

		invoice, err := invoiceRepo.GetForUpdate(payment.InvoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}

		if _, err := paymentRepo.Delete(id); err != nil {
			return err
		}
		newPaid := invoice.PaidAmount.Sub(payment.PaymentAmount)
		if newPaid.IsNegative() {
			newPaid = decimal.Zero
		}
		status := billing.DerivePaymentStatus(newPaid, invoice.TotalAmount)
		if err := invoiceRepo.UpdatePayment(invoice.ID, newPaid, status); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// ListByInvoice lista el historial de pagos de una factura. Retorna
// ErrNotFound si la factura no existe.
func (uc *PaymentUseCase) ListByInvoice(invoiceID string) ([]dto.InvoicePaymentResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoicePaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return items, nil
}

// BatchPay marca como pagadas todas las facturas indicadas, en una sola
// transacción. Por cada factura con saldo pendiente sintetiza un pago por el
// remanente; si alguna factura no existe, toda la operación se revierte.
func (uc *PaymentUseCase) BatchPay(ctx context.Context, in dto.BatchPayRequest) (*dto.BatchPayResponse, error) {
	if len(in.InvoiceIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	paid := 0
	err := uc.txRunner.Run(ctx, func(paymentRepo repository.InvoicePaymentRepository, invoiceRepo repository.InvoiceRepository) error {
		for _, invoiceID := range in.InvoiceIDs {
			invoice, err := invoiceRepo.GetForUpdate(invoiceID)
			if err != nil {
				return err
			}
			if invoice == nil {
				return domain.ErrNotFound
			}

			remainder := invoice.PendingAmount()
			if remainder.IsNegative() {
				remainder = decimal.Zero
			}
			if remainder.GreaterThan(decimal.Zero) {
				payment := &entity.InvoicePayment{
					ID:            uuid.New().String(),
					InvoiceID:     invoice.ID,
					PaymentAmount: remainder,
					PaymentDate:   now,
					PaymentMethod: entity.BatchPaymentMethod,
					Notes:         "Pago generado por conciliación masiva",
					CreatedAt:     now,
				}
				if err := paymentRepo.Create(payment); err != nil {
					return err
				}
			}

			newPaid := invoice.PaidAmount.Add(remainder)
			status := billing.DerivePaymentStatus(newPaid, invoice.TotalAmount)
			if err := invoiceRepo.UpdatePayment(invoice.ID, newPaid, status); err != nil {
				return err
			}
			paid++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.BatchPayResponse{PaidInvoices: paid}, nil
}

func toPaymentResponse(p *entity.InvoicePayment) *dto.InvoicePaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.InvoicePaymentResponse{
		ID:            p.ID,
		InvoiceID:     p.InvoiceID,
		PaymentAmount: p.PaymentAmount,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}
