package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.VacationRepository = (*VacationRepo)(nil)

// VacationRepo implementación del puerto VacationRepository sobre PostgreSQL.
type VacationRepo struct {
	q Querier
}

// NewVacationRepository construye el adaptador de persistencia para vacaciones.
func NewVacationRepository(q Querier) *VacationRepo {
	return &VacationRepo{q: q}
}

// Create persiste una nueva solicitud de vacaciones.
func (r *VacationRepo) Create(vacation *entity.Vacation) error {
	query := `
		INSERT INTO vacations (id, worker_id, start_date, end_date, total_days, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		vacation.ID, vacation.WorkerID, vacation.StartDate, vacation.EndDate,
		vacation.TotalDays, vacation.Status, vacation.Notes, vacation.CreatedAt, vacation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vacation: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *VacationRepo) GetByID(id string) (*entity.Vacation, error) {
	query := `
		SELECT id, worker_id, start_date, end_date, total_days, status, notes, created_at, updated_at
		FROM vacations WHERE id = $1`
	var v entity.Vacation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.WorkerID, &v.StartDate, &v.EndDate, &v.TotalDays, &v.Status,
		&v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vacation: %w", err)
	}
	return &v, nil
}

// List lista solicitudes con paginación.
func (r *VacationRepo) List(limit, offset int) ([]*entity.Vacation, error) {
	query := `
		SELECT id, worker_id, start_date, end_date, total_days, status, notes, created_at, updated_at
		FROM vacations ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	defer rows.Close()
	return scanVacations(rows)
}

// ListByWorker lista las vacaciones de un trabajador, opcionalmente filtradas
// por estado (statuses vacío = todas).
func (r *VacationRepo) ListByWorker(workerID string, statuses ...string) ([]*entity.Vacation, error) {
	query := `
		SELECT id, worker_id, start_date, end_date, total_days, status, notes, created_at, updated_at
		FROM vacations WHERE worker_id = $1`
	args := []any{workerID}
	if len(statuses) > 0 {
		query += ` AND status = ANY($2)`
		args = append(args, statuses)
	}
	query += ` ORDER BY start_date DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vacations by worker: %w", err)
	}
	defer rows.Close()
	return scanVacations(rows)
}

// Update actualiza una solicitud existente.
func (r *VacationRepo) Update(vacation *entity.Vacation) error {
	query := `
		UPDATE vacations SET start_date = $2, end_date = $3, total_days = $4,
			status = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		vacation.ID, vacation.StartDate, vacation.EndDate, vacation.TotalDays,
		vacation.Status, vacation.Notes, vacation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vacation: %w", err)
	}
	return nil
}

// Delete elimina una solicitud por ID. Retorna false si no existía.
func (r *VacationRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM vacations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete vacation: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanVacations(rows pgx.Rows) ([]*entity.Vacation, error) {
	var list []*entity.Vacation
	for rows.Next() {
		var v entity.Vacation
		if err := rows.Scan(
			&v.ID, &v.WorkerID, &v.StartDate, &v.EndDate, &v.TotalDays, &v.Status,
			&v.Notes, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vacation: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
