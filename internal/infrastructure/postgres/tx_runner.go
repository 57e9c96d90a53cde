package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/taller-api/internal/application/billing"
	"github.com/jhoicas/taller-api/internal/application/workshop"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ workshop.TxRunner = (*WorkshopTxRunner)(nil)
var _ billing.TxRunner = (*BillingTxRunner)(nil)

// WorkshopTxRunner ejecuta callbacks de adelantos dentro de una transacción
// PostgreSQL, con repos de adelantos y trabajos atados a la tx.
type WorkshopTxRunner struct {
	pool *pgxpool.Pool
}

// NewWorkshopTxRunner construye el runner con el pool.
func NewWorkshopTxRunner(pool *pgxpool.Pool) *WorkshopTxRunner {
	return &WorkshopTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *WorkshopTxRunner) Run(ctx context.Context, fn func(
	advanceRepo repository.AdvanceRepository,
	jobRepo repository.JobRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	advanceRepo := NewAdvanceRepository(tx)
	jobRepo := NewJobRepository(tx)

	if err := fn(advanceRepo, jobRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// BillingTxRunner ejecuta callbacks de pagos de factura dentro de una
// transacción PostgreSQL, con repos de pagos y facturas atados a la tx.
type BillingTxRunner struct {
	pool *pgxpool.Pool
}

// NewBillingTxRunner construye el runner con el pool.
func NewBillingTxRunner(pool *pgxpool.Pool) *BillingTxRunner {
	return &BillingTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *BillingTxRunner) Run(ctx context.Context, fn func(
	paymentRepo repository.InvoicePaymentRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	paymentRepo := NewInvoicePaymentRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)

	if err := fn(paymentRepo, invoiceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
