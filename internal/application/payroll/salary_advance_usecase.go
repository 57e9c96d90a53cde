package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/payroll"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// SalaryAdvanceUseCase casos de uso de anticipos de sueldo. El tope por
// período es el salario base completo del trabajador; solo los trabajadores
// de planta con salario registrado son elegibles.
type SalaryAdvanceUseCase struct {
	workerRepo  repository.WorkerRepository
	advanceRepo repository.SalaryAdvanceRepository
}

// NewSalaryAdvanceUseCase construye el caso de uso.
func NewSalaryAdvanceUseCase(workerRepo repository.WorkerRepository, advanceRepo repository.SalaryAdvanceRepository) *SalaryAdvanceUseCase {
	return &SalaryAdvanceUseCase{workerRepo: workerRepo, advanceRepo: advanceRepo}
}

// eligible valida trabajador existente, de planta y con salario base.
// Retorna ErrNotFound o ErrNotEligible según el caso.
func (uc *SalaryAdvanceUseCase) eligible(workerID string) (*entity.Worker, error) {
	worker, err := uc.workerRepo.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	if worker.WorkerType != entity.WorkerTypeDirect {
		return nil, domain.ErrNotEligible
	}
	if worker.BaseSalary == nil {
		return nil, domain.ErrNotEligible
	}
	return worker, nil
}

// Available calcula cuánto puede anticipar el trabajador en su período de
// pago vigente a la fecha now. El disponible puede quedar negativo si ya se
// anticipó de más.
func (uc *SalaryAdvanceUseCase) Available(workerID string, now time.Time) (*dto.AvailableAdvanceResponse, error) {
	worker, err := uc.eligible(workerID)
	if err != nil {
		return nil, err
	}
	period := payroll.CurrentPayPeriod(worker.PaymentFrequency, now)
	total, err := uc.advanceRepo.TotalForPeriod(workerID, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableAdvanceResponse{
		BaseSalary:         *worker.BaseSalary,
		PaymentFrequency:   worker.PaymentFrequency,
		TotalAdvances:      total,
		AvailableAmount:    worker.BaseSalary.Sub(total),
		CurrentPeriodStart: period.Start,
		CurrentPeriodEnd:   period.End,
	}, nil
}

// Create registra un anticipo atribuido al período de pago vigente a now.
// Rechaza con *domain.ExceedsAvailableAdvanceError si el monto supera el
// disponible del período.
func (uc *SalaryAdvanceUseCase) Create(in dto.CreateSalaryAdvanceRequest, now time.Time) (*dto.SalaryAdvanceResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	worker, err := uc.eligible(in.WorkerID)
	if err != nil {
		return nil, err
	}

	period := payroll.CurrentPayPeriod(worker.PaymentFrequency, now)
	total, err := uc.advanceRepo.TotalForPeriod(in.WorkerID, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	available := worker.BaseSalary.Sub(total)
	if in.Amount.GreaterThan(available) {
		return nil, &domain.ExceedsAvailableAdvanceError{
			Requested: in.Amount,
			Available: available,
		}
	}

	advanceDate := now
	if in.AdvanceDate != nil {
		advanceDate = *in.AdvanceDate
	}
	advance := &entity.SalaryAdvance{
		ID:                 uuid.New().String(),
		WorkerID:           in.WorkerID,
		Amount:             in.Amount,
		AdvanceDate:        advanceDate,
		PaymentPeriodStart: period.Start,
		PaymentPeriodEnd:   period.End,
		Notes:              in.Notes,
		CreatedAt:          now,
	}
	if err := uc.advanceRepo.Create(advance); err != nil {
		return nil, err
	}
	return toSalaryAdvanceResponse(advance), nil
}

// GetByID obtiene un anticipo por ID.
func (uc *SalaryAdvanceUseCase) GetByID(id string) (*dto.SalaryAdvanceResponse, error) {
	advance, err := uc.advanceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if advance == nil {
		return nil, nil
	}
	return toSalaryAdvanceResponse(advance), nil
}

// List lista anticipos con paginación.
func (uc *SalaryAdvanceUseCase) List(limit, offset int) (*dto.SalaryAdvanceListResponse, error) {
	list, err := uc.advanceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toSalaryAdvanceList(list, dto.PageResponse{Limit: limit, Offset: offset}), nil
}

// ListByWorker lista los anticipos de un trabajador. Si currentPeriodOnly es
// true, filtra por los que solapan con el período de pago vigente a now.
func (uc *SalaryAdvanceUseCase) ListByWorker(workerID string, currentPeriodOnly bool, now time.Time) (*dto.SalaryAdvanceListResponse, error) {
	var periodStart, periodEnd time.Time
	if currentPeriodOnly {
		worker, err := uc.workerRepo.GetByID(workerID)
		if err != nil {
			return nil, err
		}
		if worker == nil {
			return nil, domain.ErrNotFound
		}
		period := payroll.CurrentPayPeriod(worker.PaymentFrequency, now)
		periodStart, periodEnd = period.Start, period.End
	}
	list, err := uc.advanceRepo.ListByWorker(workerID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	return toSalaryAdvanceList(list, dto.PageResponse{}), nil
}

// Delete elimina un anticipo. Retorna (false, nil) si no existe.
func (uc *SalaryAdvanceUseCase) Delete(id string) (bool, error) {
	return uc.advanceRepo.Delete(id)
}

func toSalaryAdvanceResponse(a *entity.SalaryAdvance) *dto.SalaryAdvanceResponse {
	if a == nil {
		return nil
	}
	return &dto.SalaryAdvanceResponse{
		ID:                 a.ID,
		WorkerID:           a.WorkerID,
		Amount:             a.Amount,
		AdvanceDate:        a.AdvanceDate,
		PaymentPeriodStart: a.PaymentPeriodStart,
		PaymentPeriodEnd:   a.PaymentPeriodEnd,
		Notes:              a.Notes,
		CreatedAt:          a.CreatedAt,
	}
}

func toSalaryAdvanceList(list []*entity.SalaryAdvance, page dto.PageResponse) *dto.SalaryAdvanceListResponse {
	items := make([]dto.SalaryAdvanceResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toSalaryAdvanceResponse(a))
	}
	return &dto.SalaryAdvanceListResponse{Items: items, Page: page}
}
