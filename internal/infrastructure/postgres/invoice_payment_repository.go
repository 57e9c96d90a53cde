package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.InvoicePaymentRepository = (*InvoicePaymentRepo)(nil)

// InvoicePaymentRepo implementación del puerto InvoicePaymentRepository sobre
// PostgreSQL (usable con pool o tx).
type InvoicePaymentRepo struct {
	q Querier
}

// NewInvoicePaymentRepository construye el adaptador de persistencia para
// pagos de factura. Pasar pool o tx (Querier).
func NewInvoicePaymentRepository(q Querier) *InvoicePaymentRepo {
	return &InvoicePaymentRepo{q: q}
}

// Create persiste un nuevo pago.
func (r *InvoicePaymentRepo) Create(payment *entity.InvoicePayment) error {
	query := `
		INSERT INTO invoice_payments (id, invoice_id, payment_amount, payment_date,
			payment_method, reference, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceID, payment.PaymentAmount, payment.PaymentDate,
		payment.PaymentMethod, payment.Reference, payment.Notes, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *InvoicePaymentRepo) GetByID(id string) (*entity.InvoicePayment, error) {
	query := `
		SELECT id, invoice_id, payment_amount, payment_date, payment_method, reference, notes, created_at
		FROM invoice_payments WHERE id = $1`
	var p entity.InvoicePayment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.InvoiceID, &p.PaymentAmount, &p.PaymentDate,
		&p.PaymentMethod, &p.Reference, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice payment: %w", err)
	}
	return &p, nil
}

// List lista pagos con paginación.
func (r *InvoicePaymentRepo) List(limit, offset int) ([]*entity.InvoicePayment, error) {
	query := `
		SELECT id, invoice_id, payment_amount, payment_date, payment_method, reference, notes, created_at
		FROM invoice_payments ORDER BY payment_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoice payments: %w", err)
	}
	defer rows.Close()
	return scanInvoicePayments(rows)
}

// ListByInvoice lista el historial de pagos de una factura.
func (r *InvoicePaymentRepo) ListByInvoice(invoiceID string) ([]*entity.InvoicePayment, error) {
	query := `
		SELECT id, invoice_id, payment_amount, payment_date, payment_method, reference, notes, created_at
		FROM invoice_payments WHERE invoice_id = $1 ORDER BY payment_date DESC`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice payments by invoice: %w", err)
	}
	defer rows.Close()
	return scanInvoicePayments(rows)
}

// Delete elimina un pago por ID. Retorna false si no existía.
func (r *InvoicePaymentRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoice_payments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice payment: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanInvoicePayments(rows pgx.Rows) ([]*entity.InvoicePayment, error) {
	var list []*entity.InvoicePayment
	for rows.Next() {
		var p entity.InvoicePayment
		if err := rows.Scan(
			&p.ID, &p.InvoiceID, &p.PaymentAmount, &p.PaymentDate,
			&p.PaymentMethod, &p.Reference, &p.Notes, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
