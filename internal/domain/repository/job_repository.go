package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// JobRepository define el puerto de persistencia para Job.
type JobRepository interface {
	Create(job *entity.Job) error
	GetByID(id string) (*entity.Job, error)
	// GetForUpdate obtiene el trabajo y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Job, error)
	List(limit, offset int) ([]*entity.Job, error)
	ListByWorker(workerID string) ([]*entity.Job, error)
	Update(job *entity.Job) error
	// UpdateAmounts persiste el total acumulado de adelantos y el estado,
	// en la misma transacción que la mutación del ledger.
	UpdateAmounts(id string, advanceAmount decimal.Decimal, status string) error
	Delete(id string) (bool, error)
}
