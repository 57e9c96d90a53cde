package workshop

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el ledger de adelantos y el
// total acumulado del trabajo muten de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		advanceRepo repository.AdvanceRepository,
		jobRepo repository.JobRepository,
	) error) error
}
