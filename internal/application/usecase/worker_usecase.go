package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// WorkerUseCase casos de uso CRUD para trabajadores.
type WorkerUseCase struct {
	repo repository.WorkerRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo}
}

// Create crea un nuevo trabajador. Por defecto es de planta (direct) con
// frecuencia de pago mensual.
func (uc *WorkerUseCase) Create(in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	workerType := in.WorkerType
	if workerType == "" {
		workerType = entity.WorkerTypeDirect
	}
	if workerType != entity.WorkerTypeDirect && workerType != entity.WorkerTypeContract {
		return nil, domain.ErrInvalidInput
	}
	frequency := in.PaymentFrequency
	if frequency == "" {
		frequency = entity.PaymentFrequencyMonthly
	}
	if !validFrequency(frequency) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	worker := &entity.Worker{
		ID:               uuid.New().String(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		DocumentNumber:   in.DocumentNumber,
		Phone:            in.Phone,
		Email:            in.Email,
		HireDate:         in.HireDate,
		BaseSalary:       in.BaseSalary,
		PaymentFrequency: frequency,
		WorkerType:       workerType,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// GetByID obtiene un trabajador por ID.
func (uc *WorkerUseCase) GetByID(id string) (*dto.WorkerResponse, error) {
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	return toWorkerResponse(worker), nil
}

// Update actualiza un trabajador.
func (uc *WorkerUseCase) Update(id string, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		worker.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		worker.LastName = *in.LastName
	}
	if in.DocumentNumber != nil {
		worker.DocumentNumber = *in.DocumentNumber
	}
	if in.Phone != nil {
		worker.Phone = *in.Phone
	}
	if in.Email != nil {
		worker.Email = *in.Email
	}
	if in.HireDate != nil {
		worker.HireDate = in.HireDate
	}
	if in.BaseSalary != nil {
		worker.BaseSalary = in.BaseSalary
	}
	if in.PaymentFrequency != nil {
		if !validFrequency(*in.PaymentFrequency) {
			return nil, domain.ErrInvalidInput
		}
		worker.PaymentFrequency = *in.PaymentFrequency
	}
	if in.WorkerType != nil {
		if *in.WorkerType != entity.WorkerTypeDirect && *in.WorkerType != entity.WorkerTypeContract {
			return nil, domain.ErrInvalidInput
		}
		worker.WorkerType = *in.WorkerType
	}
	if in.IsActive != nil {
		worker.IsActive = *in.IsActive
	}
	worker.UpdatedAt = time.Now()
	if err := uc.repo.Update(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// List lista trabajadores con paginación.
func (uc *WorkerUseCase) List(limit, offset int) (*dto.WorkerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkerResponse(w))
	}
	return &dto.WorkerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un trabajador por ID. Retorna (false, nil) si no existe.
func (uc *WorkerUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func validFrequency(f string) bool {
	switch f {
	case entity.PaymentFrequencyWeekly, entity.PaymentFrequencyBiweekly, entity.PaymentFrequencyMonthly:
		return true
	}
	return false
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkerResponse{
		ID:               w.ID,
		FirstName:        w.FirstName,
		LastName:         w.LastName,
		DocumentNumber:   w.DocumentNumber,
		Phone:            w.Phone,
		Email:            w.Email,
		HireDate:         w.HireDate,
		BaseSalary:       w.BaseSalary,
		PaymentFrequency: w.PaymentFrequency,
		WorkerType:       w.WorkerType,
		IsActive:         w.IsActive,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}
