package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación del puerto WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador de persistencia para trabajadores.
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// Create persiste un nuevo trabajador.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	query := `
		INSERT INTO workers (id, first_name, last_name, document_number, phone, email,
			hire_date, base_salary, payment_frequency, worker_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.FirstName, worker.LastName, worker.DocumentNumber, worker.Phone,
		worker.Email, worker.HireDate, worker.BaseSalary, worker.PaymentFrequency,
		worker.WorkerType, worker.IsActive, worker.CreatedAt, worker.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := `
		SELECT id, first_name, last_name, document_number, phone, email,
			hire_date, base_salary, payment_frequency, worker_type, is_active, created_at, updated_at
		FROM workers WHERE id = $1`
	var w entity.Worker
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.FirstName, &w.LastName, &w.DocumentNumber, &w.Phone, &w.Email,
		&w.HireDate, &w.BaseSalary, &w.PaymentFrequency, &w.WorkerType, &w.IsActive,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &w, nil
}

// List lista trabajadores con paginación.
func (r *WorkerRepo) List(limit, offset int) ([]*entity.Worker, error) {
	query := `
		SELECT id, first_name, last_name, document_number, phone, email,
			hire_date, base_salary, payment_frequency, worker_type, is_active, created_at, updated_at
		FROM workers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(
			&w.ID, &w.FirstName, &w.LastName, &w.DocumentNumber, &w.Phone, &w.Email,
			&w.HireDate, &w.BaseSalary, &w.PaymentFrequency, &w.WorkerType, &w.IsActive,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update actualiza un trabajador existente.
func (r *WorkerRepo) Update(worker *entity.Worker) error {
	query := `
		UPDATE workers SET first_name = $2, last_name = $3, document_number = $4, phone = $5,
			email = $6, hire_date = $7, base_salary = $8, payment_frequency = $9,
			worker_type = $10, is_active = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.FirstName, worker.LastName, worker.DocumentNumber, worker.Phone,
		worker.Email, worker.HireDate, worker.BaseSalary, worker.PaymentFrequency,
		worker.WorkerType, worker.IsActive, worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	return nil
}

// Delete elimina un trabajador por ID. Retorna false si no existía.
func (r *WorkerRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete worker: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
