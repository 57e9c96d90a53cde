package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.SalaryAdvanceRepository = (*SalaryAdvanceRepo)(nil)

// SalaryAdvanceRepo implementación del puerto SalaryAdvanceRepository sobre PostgreSQL.
type SalaryAdvanceRepo struct {
	q Querier
}

// NewSalaryAdvanceRepository construye el adaptador de persistencia para anticipos de sueldo.
func NewSalaryAdvanceRepository(q Querier) *SalaryAdvanceRepo {
	return &SalaryAdvanceRepo{q: q}
}

// Create persiste un nuevo anticipo.
func (r *SalaryAdvanceRepo) Create(advance *entity.SalaryAdvance) error {
	query := `
		INSERT INTO salary_advances (id, worker_id, amount, advance_date,
			payment_period_start, payment_period_end, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		advance.ID, advance.WorkerID, advance.Amount, advance.AdvanceDate,
		advance.PaymentPeriodStart, advance.PaymentPeriodEnd, advance.Notes, advance.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salary advance: %w", err)
	}
	return nil
}

// GetByID obtiene un anticipo por ID.
func (r *SalaryAdvanceRepo) GetByID(id string) (*entity.SalaryAdvance, error) {
	query := `
		SELECT id, worker_id, amount, advance_date, payment_period_start, payment_period_end, notes, created_at
		FROM salary_advances WHERE id = $1`
	var a entity.SalaryAdvance
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.WorkerID, &a.Amount, &a.AdvanceDate,
		&a.PaymentPeriodStart, &a.PaymentPeriodEnd, &a.Notes, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salary advance: %w", err)
	}
	return &a, nil
}

// List lista anticipos con paginación.
func (r *SalaryAdvanceRepo) List(limit, offset int) ([]*entity.SalaryAdvance, error) {
	query := `
		SELECT id, worker_id, amount, advance_date, payment_period_start, payment_period_end, notes, created_at
		FROM salary_advances ORDER BY advance_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list salary advances: %w", err)
	}
	defer rows.Close()
	return scanSalaryAdvances(rows)
}

// ListByWorker devuelve los anticipos de un trabajador. Si periodStart y
// periodEnd no son cero, filtra por solapamiento de ventana.
func (r *SalaryAdvanceRepo) ListByWorker(workerID string, periodStart, periodEnd time.Time) ([]*entity.SalaryAdvance, error) {
	query := `
		SELECT id, worker_id, amount, advance_date, payment_period_start, payment_period_end, notes, created_at
		FROM salary_advances WHERE worker_id = $1`
	args := []any{workerID}
	if !periodStart.IsZero() || !periodEnd.IsZero() {
		query += ` AND payment_period_start <= $2 AND payment_period_end >= $3`
		args = append(args, periodEnd, periodStart)
	}
	query += ` ORDER BY advance_date DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list salary advances by worker: %w", err)
	}
	defer rows.Close()
	return scanSalaryAdvances(rows)
}

// TotalForPeriod suma los montos de los anticipos cuyo período solapa con
// [periodStart, periodEnd].
func (r *SalaryAdvanceRepo) TotalForPeriod(workerID string, periodStart, periodEnd time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_advances
		WHERE worker_id = $1 AND payment_period_start <= $2 AND payment_period_end >= $3`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, workerID, periodEnd, periodStart).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total salary advances: %w", err)
	}
	return total, nil
}

// Delete elimina un anticipo por ID. Retorna false si no existía.
func (r *SalaryAdvanceRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM salary_advances WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete salary advance: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanSalaryAdvances(rows pgx.Rows) ([]*entity.SalaryAdvance, error) {
	var list []*entity.SalaryAdvance
	for rows.Next() {
		var a entity.SalaryAdvance
		if err := rows.Scan(
			&a.ID, &a.WorkerID, &a.Amount, &a.AdvanceDate,
			&a.PaymentPeriodStart, &a.PaymentPeriodEnd, &a.Notes, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan salary advance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
