package repository

import "github.com/jhoicas/taller-api/internal/domain/entity"

// WorkerRepository define el puerto de persistencia para Worker.
type WorkerRepository interface {
	Create(worker *entity.Worker) error
	GetByID(id string) (*entity.Worker, error)
	List(limit, offset int) ([]*entity.Worker, error)
	Update(worker *entity.Worker) error
	Delete(id string) (bool, error)
}
