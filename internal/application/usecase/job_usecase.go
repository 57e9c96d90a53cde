package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// JobUseCase casos de uso CRUD para trabajos de reparación. El total
// acumulado de adelantos (AdvanceAmount) no se toca por esta vía: solo muta
// junto con su ledger en el caso de uso de adelantos.
type JobUseCase struct {
	jobRepo     repository.JobRepository
	vehicleRepo repository.VehicleRepository
	workerRepo  repository.WorkerRepository
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(jobRepo repository.JobRepository, vehicleRepo repository.VehicleRepository, workerRepo repository.WorkerRepository) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, vehicleRepo: vehicleRepo, workerRepo: workerRepo}
}

// Create registra un trabajo en estado pending con adelantos en cero.
// Valida que el vehículo y el trabajador existan.
func (uc *JobUseCase) Create(in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if !in.TotalAmount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	vehicle, err := uc.vehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return nil, err
	}
	worker, err := uc.workerRepo.GetByID(in.WorkerID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil || worker == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	job := &entity.Job{
		ID:            uuid.New().String(),
		VehicleID:     in.VehicleID,
		WorkerID:      in.WorkerID,
		Description:   in.Description,
		TotalAmount:   in.TotalAmount,
		AdvanceAmount: decimal.Zero,
		Status:        entity.JobStatusPending,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// GetByID obtiene un trabajo por ID.
func (uc *JobUseCase) GetByID(id string) (*dto.JobResponse, error) {
	job, err := uc.jobRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, nil
	}
	return toJobResponse(job), nil
}

// Update actualiza un trabajo. El estado puede fijarse a mano, incluido
// cancelled; el acumulado de adelantos no es editable.
func (uc *JobUseCase) Update(id string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.jobRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, nil
	}
	if in.VehicleID != nil {
		job.VehicleID = *in.VehicleID
	}
	if in.WorkerID != nil {
		job.WorkerID = *in.WorkerID
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.TotalAmount != nil {
		if !in.TotalAmount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		job.TotalAmount = *in.TotalAmount
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.JobStatusPending, entity.JobStatusInProgress,
			entity.JobStatusCompleted, entity.JobStatusCancelled:
			job.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.StartDate != nil {
		job.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		job.EndDate = in.EndDate
	}
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// List lista trabajos con paginación.
func (uc *JobUseCase) List(limit, offset int) (*dto.JobListResponse, error) {
	list, err := uc.jobRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobResponse, 0, len(list))
	for _, j := range list {
		items = append(items, *toJobResponse(j))
	}
	return &dto.JobListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByWorker lista los trabajos asignados a un trabajador.
func (uc *JobUseCase) ListByWorker(workerID string) (*dto.JobListResponse, error) {
	list, err := uc.jobRepo.ListByWorker(workerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobResponse, 0, len(list))
	for _, j := range list {
		items = append(items, *toJobResponse(j))
	}
	return &dto.JobListResponse{Items: items}, nil
}

// Delete elimina un trabajo por ID. Retorna (false, nil) si no existe.
func (uc *JobUseCase) Delete(id string) (bool, error) {
	return uc.jobRepo.Delete(id)
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	if j == nil {
		return nil
	}
	return &dto.JobResponse{
		ID:            j.ID,
		VehicleID:     j.VehicleID,
		WorkerID:      j.WorkerID,
		Description:   j.Description,
		TotalAmount:   j.TotalAmount,
		AdvanceAmount: j.AdvanceAmount,
		Status:        j.Status,
		StartDate:     j.StartDate,
		EndDate:       j.EndDate,
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}
