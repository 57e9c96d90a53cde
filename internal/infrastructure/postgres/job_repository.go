package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL
// (usable con pool o tx).
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador de persistencia para trabajos.
// Pasar pool o tx (Querier).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobColumns = `id, vehicle_id, worker_id, description, total_amount, advance_amount,
		status, start_date, end_date, created_at, updated_at`

// Create persiste un nuevo trabajo.
func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, vehicle_id, worker_id, description, total_amount, advance_amount,
			status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.VehicleID, job.WorkerID, job.Description, job.TotalAmount,
		job.AdvanceAmount, job.Status, job.StartDate, job.EndDate, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajo por ID.
func (r *JobRepo) GetByID(id string) (*entity.Job, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el trabajo y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *JobRepo) GetForUpdate(id string) (*entity.Job, error) {
	return r.get(id, true)
}

func (r *JobRepo) get(id string, forUpdate bool) (*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var j entity.Job
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&j.ID, &j.VehicleID, &j.WorkerID, &j.Description, &j.TotalAmount, &j.AdvanceAmount,
		&j.Status, &j.StartDate, &j.EndDate, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

// List lista trabajos con paginación.
func (r *JobRepo) List(limit, offset int) ([]*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

// ListByWorker lista los trabajos asignados a un trabajador.
func (r *JobRepo) ListByWorker(workerID string) ([]*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE worker_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, workerID)
	if err != nil {
		return nil, fmt.Errorf("list jobs by worker: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

// Update actualiza un trabajo existente. No toca advance_amount: ese campo
// solo muta vía UpdateAmounts, junto con el ledger de adelantos.
func (r *JobRepo) Update(job *entity.Job) error {
	query := `
		UPDATE jobs SET vehicle_id = $2, worker_id = $3, description = $4, total_amount = $5,
			status = $6, start_date = $7, end_date = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.VehicleID, job.WorkerID, job.Description, job.TotalAmount,
		job.Status, job.StartDate, job.EndDate, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// UpdateAmounts persiste el total acumulado de adelantos y el estado, en la
// misma transacción que la mutación del ledger.
func (r *JobRepo) UpdateAmounts(id string, advanceAmount decimal.Decimal, status string) error {
	query := `UPDATE jobs SET advance_amount = $2, status = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, advanceAmount, status)
	if err != nil {
		return fmt.Errorf("update job amounts: %w", err)
	}
	return nil
}

// Delete elimina un trabajo por ID. Retorna false si no existía.
func (r *JobRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanJobs(rows pgx.Rows) ([]*entity.Job, error) {
	var list []*entity.Job
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(
			&j.ID, &j.VehicleID, &j.WorkerID, &j.Description, &j.TotalAmount, &j.AdvanceAmount,
			&j.Status, &j.StartDate, &j.EndDate, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}
