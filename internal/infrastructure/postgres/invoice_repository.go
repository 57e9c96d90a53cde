package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL
// (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas
// de proveedor. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, invoice_number, supplier_id, description, total_amount, paid_amount,
		payment_status, invoice_date, due_date, created_at, updated_at`

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, invoice_number, supplier_id, description, total_amount, paid_amount,
			payment_status, invoice_date, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.SupplierID, invoice.Description,
		invoice.TotalAmount, invoice.PaidAmount, invoice.PaymentStatus,
		invoice.InvoiceDate, invoice.DueDate, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.get(`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetForUpdate obtiene la factura y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *InvoiceRepo) GetForUpdate(id string) (*entity.Invoice, error) {
	return r.get(`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
}

// GetByNumber obtiene una factura por su número.
func (r *InvoiceRepo) GetByNumber(invoiceNumber string) (*entity.Invoice, error) {
	return r.get(`SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, invoiceNumber)
}

func (r *InvoiceRepo) get(query, arg string) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.SupplierID, &inv.Description,
		&inv.TotalAmount, &inv.PaidAmount, &inv.PaymentStatus,
		&inv.InvoiceDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List lista facturas con paginación.
func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY invoice_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// ListBySupplier lista las facturas de un proveedor.
func (r *InvoiceRepo) ListBySupplier(supplierID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE supplier_id = $1 ORDER BY invoice_date DESC`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list invoices by supplier: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// Update actualiza una factura existente. No toca paid_amount ni
// payment_status salvo lo que venga ya derivado en la entidad.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET invoice_number = $2, supplier_id = $3, description = $4,
			total_amount = $5, payment_status = $6, invoice_date = $7, due_date = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.SupplierID, invoice.Description,
		invoice.TotalAmount, invoice.PaymentStatus, invoice.InvoiceDate, invoice.DueDate, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// UpdatePayment persiste el total pagado y el estado derivado, en la misma
// transacción que la mutación del ledger de pagos.
func (r *InvoiceRepo) UpdatePayment(id string, paidAmount decimal.Decimal, paymentStatus string) error {
	query := `UPDATE invoices SET paid_amount = $2, payment_status = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, paidAmount, paymentStatus)
	if err != nil {
		return fmt.Errorf("update invoice payment: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID. Retorna false si no existía.
func (r *InvoiceRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.SupplierID, &inv.Description,
			&inv.TotalAmount, &inv.PaidAmount, &inv.PaymentStatus,
			&inv.InvoiceDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
