// Package payroll contiene los casos de uso de nómina: vacaciones con
// validación de saldo y anticipos de sueldo acotados al período de pago.
package payroll

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/payroll"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// VacationUseCase casos de uso de vacaciones: saldo, solicitud con validación
// de días disponibles y CRUD.
type VacationUseCase struct {
	workerRepo   repository.WorkerRepository
	vacationRepo repository.VacationRepository
}

// NewVacationUseCase construye el caso de uso.
func NewVacationUseCase(workerRepo repository.WorkerRepository, vacationRepo repository.VacationRepository) *VacationUseCase {
	return &VacationUseCase{workerRepo: workerRepo, vacationRepo: vacationRepo}
}

// Balance calcula el saldo de vacaciones del trabajador a la fecha now.
// Retorna ErrNotFound si el trabajador no existe y ErrMissingHireDate si no
// tiene fecha de ingreso registrada.
func (uc *VacationUseCase) Balance(workerID string, now time.Time) (*dto.VacationBalanceResponse, error) {
	worker, err := uc.workerRepo.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	if worker.HireDate == nil {
		return nil, domain.ErrMissingHireDate
	}

	balance, err := uc.balanceFor(worker, now)
	if err != nil {
		return nil, err
	}
	return &dto.VacationBalanceResponse{
		WorkerID:      balance.WorkerID,
		HireDate:      balance.HireDate,
		MonthsWorked:  balance.MonthsWorked,
		AccruedDays:   balance.AccruedDays,
		UsedDays:      balance.UsedDays,
		PendingDays:   balance.PendingDays,
		AvailableDays: balance.AvailableDays,
	}, nil
}

// balanceFor carga el historial del trabajador y delega en el cálculo puro.
func (uc *VacationUseCase) balanceFor(worker *entity.Worker, now time.Time) (payroll.VacationBalance, error) {
	used, err := uc.vacationRepo.ListByWorker(worker.ID, entity.VacationStatusApproved, entity.VacationStatusCompleted)
	if err != nil {
		return payroll.VacationBalance{}, err
	}
	requested, err := uc.vacationRepo.ListByWorker(worker.ID, entity.VacationStatusRequested)
	if err != nil {
		return payroll.VacationBalance{}, err
	}
	return payroll.CalculateVacationBalance(worker.ID, *worker.HireDate, deref(used), deref(requested), now), nil
}

// Create registra una solicitud de vacaciones en estado requested.
// Rechaza con *domain.InsufficientDaysError si los días solicitados exceden
// el saldo disponible a la fecha now.
func (uc *VacationUseCase) Create(in dto.CreateVacationRequest, now time.Time) (*dto.VacationResponse, error) {
	if in.TotalDays < 1 || in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	worker, err := uc.workerRepo.GetByID(in.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	if worker.HireDate == nil {
		return nil, domain.ErrMissingHireDate
	}

	balance, err := uc.balanceFor(worker, now)
	if err != nil {
		return nil, err
	}
	if !payroll.CanRequestVacation(balance.AvailableDays, in.TotalDays) {
		return nil, &domain.InsufficientDaysError{
			RequestedDays: in.TotalDays,
			AvailableDays: balance.AvailableDays,
		}
	}

	vacation := &entity.Vacation{
		ID:        uuid.New().String(),
		WorkerID:  in.WorkerID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		TotalDays: in.TotalDays,
		Status:    entity.VacationStatusRequested,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.vacationRepo.Create(vacation); err != nil {
		return nil, err
	}
	return toVacationResponse(vacation), nil
}

// GetByID obtiene una solicitud por ID.
func (uc *VacationUseCase) GetByID(id string) (*dto.VacationResponse, error) {
	vacation, err := uc.vacationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vacation == nil {
		return nil, nil
	}
	return toVacationResponse(vacation), nil
}

// List lista solicitudes con paginación.
func (uc *VacationUseCase) List(limit, offset int) (*dto.VacationListResponse, error) {
	list, err := uc.vacationRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VacationResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVacationResponse(v))
	}
	return &dto.VacationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByWorker lista todas las solicitudes de un trabajador.
func (uc *VacationUseCase) ListByWorker(workerID string) (*dto.VacationListResponse, error) {
	list, err := uc.vacationRepo.ListByWorker(workerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VacationResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVacationResponse(v))
	}
	return &dto.VacationListResponse{Items: items}, nil
}

// Update actualiza una solicitud (fechas, días, estado, notas).
// El cambio de estado aquí es manual: aprobar o rechazar no recalcula el
// saldo, ya que requested también descuenta como pendiente.
func (uc *VacationUseCase) Update(id string, in dto.UpdateVacationRequest) (*dto.VacationResponse, error) {
	vacation, err := uc.vacationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vacation == nil {
		return nil, nil
	}
	if in.StartDate != nil {
		vacation.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		vacation.EndDate = *in.EndDate
	}
	if in.TotalDays != nil {
		if *in.TotalDays < 1 {
			return nil, domain.ErrInvalidInput
		}
		vacation.TotalDays = *in.TotalDays
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.VacationStatusRequested, entity.VacationStatusApproved,
			entity.VacationStatusRejected, entity.VacationStatusCompleted:
			vacation.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Notes != nil {
		vacation.Notes = *in.Notes
	}
	vacation.UpdatedAt = time.Now()
	if err := uc.vacationRepo.Update(vacation); err != nil {
		return nil, err
	}
	return toVacationResponse(vacation), nil
}

// Delete elimina una solicitud. Retorna (false, nil) si no existe.
func (uc *VacationUseCase) Delete(id string) (bool, error) {
	return uc.vacationRepo.Delete(id)
}

func toVacationResponse(v *entity.Vacation) *dto.VacationResponse {
	if v == nil {
		return nil
	}
	return &dto.VacationResponse{
		ID:        v.ID,
		WorkerID:  v.WorkerID,
		StartDate: v.StartDate,
		EndDate:   v.EndDate,
		TotalDays: v.TotalDays,
		Status:    v.Status,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func deref(list []*entity.Vacation) []entity.Vacation {
	out := make([]entity.Vacation, 0, len(list))
	for _, v := range list {
		out = append(out, *v)
	}
	return out
}
