package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.AdvanceRepository = (*AdvanceRepo)(nil)

// AdvanceRepo implementación del puerto AdvanceRepository sobre PostgreSQL
// (usable con pool o tx).
type AdvanceRepo struct {
	q Querier
}

// NewAdvanceRepository construye el adaptador de persistencia para adelantos
// de trabajos. Pasar pool o tx (Querier).
func NewAdvanceRepository(q Querier) *AdvanceRepo {
	return &AdvanceRepo{q: q}
}

// Create persiste un nuevo adelanto.
func (r *AdvanceRepo) Create(advance *entity.Advance) error {
	query := `
		INSERT INTO advances (id, job_id, amount, description, advance_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		advance.ID, advance.JobID, advance.Amount, advance.Description,
		advance.AdvanceDate, advance.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert advance: %w", err)
	}
	return nil
}

// GetByID obtiene un adelanto por ID.
func (r *AdvanceRepo) GetByID(id string) (*entity.Advance, error) {
	query := `
		SELECT id, job_id, amount, description, advance_date, created_at
		FROM advances WHERE id = $1`
	var a entity.Advance
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.JobID, &a.Amount, &a.Description, &a.AdvanceDate, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get advance: %w", err)
	}
	return &a, nil
}

// List lista adelantos con paginación.
func (r *AdvanceRepo) List(limit, offset int) ([]*entity.Advance, error) {
	query := `
		SELECT id, job_id, amount, description, advance_date, created_at
		FROM advances ORDER BY advance_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list advances: %w", err)
	}
	defer rows.Close()
	return scanAdvances(rows)
}

// ListByJob lista los adelantos de un trabajo.
func (r *AdvanceRepo) ListByJob(jobID string) ([]*entity.Advance, error) {
	query := `
		SELECT id, job_id, amount, description, advance_date, created_at
		FROM advances WHERE job_id = $1 ORDER BY advance_date DESC`
	rows, err := r.q.Query(context.Background(), query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list advances by job: %w", err)
	}
	defer rows.Close()
	return scanAdvances(rows)
}

// Delete elimina un adelanto por ID. Retorna false si no existía.
func (r *AdvanceRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete advance: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanAdvances(rows pgx.Rows) ([]*entity.Advance, error) {
	var list []*entity.Advance
	for rows.Next() {
		var a entity.Advance
		if err := rows.Scan(&a.ID, &a.JobID, &a.Amount, &a.Description, &a.AdvanceDate, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan advance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
