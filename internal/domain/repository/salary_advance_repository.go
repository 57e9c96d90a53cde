package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// SalaryAdvanceRepository define el puerto de persistencia para SalaryAdvance.
type SalaryAdvanceRepository interface {
	Create(advance *entity.SalaryAdvance) error
	GetByID(id string) (*entity.SalaryAdvance, error)
	List(limit, offset int) ([]*entity.SalaryAdvance, error)
	// ListByWorker devuelve los anticipos de un trabajador. Si periodStart y
	// periodEnd no son cero, filtra por solapamiento de ventana:
	// payment_period_start <= periodEnd AND payment_period_end >= periodStart.
	ListByWorker(workerID string, periodStart, periodEnd time.Time) ([]*entity.SalaryAdvance, error)
	// TotalForPeriod suma los montos de los anticipos cuyo período solapa
	// con [periodStart, periodEnd].
	TotalForPeriod(workerID string, periodStart, periodEnd time.Time) (decimal.Decimal, error)
	Delete(id string) (bool, error)
}
