package repository

import "github.com/jhoicas/taller-api/internal/domain/entity"

// VacationRepository define el puerto de persistencia para Vacation.
type VacationRepository interface {
	Create(vacation *entity.Vacation) error
	GetByID(id string) (*entity.Vacation, error)
	List(limit, offset int) ([]*entity.Vacation, error)
	// ListByWorker devuelve las vacaciones de un trabajador, opcionalmente
	// filtradas por estado (statuses vacío = todas).
	ListByWorker(workerID string, statuses ...string) ([]*entity.Vacation, error)
	Update(vacation *entity.Vacation) error
	Delete(id string) (bool, error)
}
