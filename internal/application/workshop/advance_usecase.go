// Package workshop contiene los casos de uso transaccionales del taller:
// adelantos de pago sobre trabajos con total acumulado denormalizado en Job.
package workshop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// AdvanceUseCase registra y elimina adelantos sobre trabajos de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre el trabajo.
type AdvanceUseCase struct {
	txRunner    TxRunner
	advanceRepo repository.AdvanceRepository
	jobRepo     repository.JobRepository
}

// NewAdvanceUseCase construye el caso de uso.
func NewAdvanceUseCase(txRunner TxRunner, advanceRepo repository.AdvanceRepository, jobRepo repository.JobRepository) *AdvanceUseCase {
	return &AdvanceUseCase{txRunner: txRunner, advanceRepo: advanceRepo, jobRepo: jobRepo}
}

// Create registra un adelanto y suma su monto a Job.AdvanceAmount en la misma
// transacción. Si el acumulado supera el total del trabajo se registra igual
// (con warning); si lo alcanza o supera, el trabajo pasa a completed.
func (uc *AdvanceUseCase) Create(ctx context.Context, in dto.CreateAdvanceRequest) (*dto.AdvanceResponse, error) {
	if in.JobID == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	advanceDate := now
	if in.AdvanceDate != nil {
		advanceDate = *in.AdvanceDate
	}
	advance := &entity.Advance{
		ID:          uuid.New().String(),
		JobID:       in.JobID,
		Amount:      in.Amount,
		Description: in.Description,
		AdvanceDate: advanceDate,
		CreatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(advanceRepo repository.AdvanceRepository, jobRepo repository.JobRepository) error {
		// Bloquea la fila del trabajo para que adelantos concurrentes no
		// pisen el acumulado.
		job, err := jobRepo.GetForUpdate(in.JobID)
		if err != nil {
			return err
		}
		if job == nil {
			return domain.ErrNotFound
		}

		if err := advanceRepo.Create(advance); err != nil {
			return err
		}

		newAmount := job.AdvanceAmount.Add(in.Amount)
		if newAmount.GreaterThan(job.TotalAmount) {
			log.Warn().
				Str("job_id", job.ID).
				Str("advance_amount", newAmount.StringFixed(2)).
				Str("total_amount", job.TotalAmount.StringFixed(2)).
				Msg("los adelantos superan el total del trabajo")
		}

		status := job.Status
		if newAmount.GreaterThanOrEqual(job.TotalAmount) {
			status = entity.JobStatusCompleted
		}
		return jobRepo.UpdateAmounts(job.ID, newAmount, status)
	})
	if err != nil {
		return nil, err
	}
	return toAdvanceResponse(advance), nil
}

// Delete elimina un adelanto y descuenta su monto de Job.AdvanceAmount en la
// misma transacción. El estado del trabajo NO se revierte: un trabajo que se
// completó por adelantos sigue completed aunque se borre el adelanto.
// Retorna (false, nil) si el adelanto no existe.
func (uc *AdvanceUseCase) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := uc.txRunner.Run(ctx, func(advanceRepo repository.AdvanceRepository, jobRepo repository.JobRepository) error {
		advance, err := advanceRepo.GetByID(id)
		if err != nil {
			return err
		}
		if advance == nil {
			return nil
		}

		job, err := jobRepo.GetForUpdate(advance.JobID)
		if err != nil {
			return err
		}
		if job == nil {
			return domain.ErrNotFound
		}

		if _, err := advanceRepo.Delete(id); err != nil {
			return err
		}
		newAmount := job.AdvanceAmount.Sub(advance.Amount)
		if err := jobRepo.UpdateAmounts(job.ID, newAmount, job.Status); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// GetByID obtiene un adelanto por ID.
func (uc *AdvanceUseCase) GetByID(id string) (*dto.AdvanceResponse, error) {
	advance, err := uc.advanceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if advance == nil {
		return nil, nil
	}
	return toAdvanceResponse(advance), nil
}

// List lista adelantos con paginación.
func (uc *AdvanceUseCase) List(limit, offset int) (*dto.AdvanceListResponse, error) {
	list, err := uc.advanceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdvanceResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAdvanceResponse(a))
	}
	return &dto.AdvanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByJob lista los adelantos de un trabajo. Retorna ErrNotFound si el
// trabajo no existe.
func (uc *AdvanceUseCase) ListByJob(jobID string) (*dto.AdvanceListResponse, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.advanceRepo.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdvanceResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAdvanceResponse(a))
	}
	return &dto.AdvanceListResponse{Items: items}, nil
}

func toAdvanceResponse(a *entity.Advance) *dto.AdvanceResponse {
	if a == nil {
		return nil
	}
	return &dto.AdvanceResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		Amount:      a.Amount,
		Description: a.Description,
		AdvanceDate: a.AdvanceDate,
		CreatedAt:   a.CreatedAt,
	}
}
