package repository

import "github.com/jhoicas/taller-api/internal/domain/entity"

// AdvanceRepository define el puerto de persistencia para Advance
// (adelantos sobre trabajos).
type AdvanceRepository interface {
	Create(advance *entity.Advance) error
	GetByID(id string) (*entity.Advance, error)
	List(limit, offset int) ([]*entity.Advance, error)
	ListByJob(jobID string) ([]*entity.Advance, error)
	Delete(id string) (bool, error)
}
