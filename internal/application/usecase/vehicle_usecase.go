package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// VehicleUseCase casos de uso CRUD para vehículos de clientes.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create registra un vehículo.
func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicle := &entity.Vehicle{
		ID:           uuid.New().String(),
		LicensePlate: in.LicensePlate,
		Brand:        in.Brand,
		Model:        in.Model,
		Year:         in.Year,
		OwnerName:    in.OwnerName,
		OwnerPhone:   in.OwnerPhone,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// GetByID obtiene un vehículo por ID.
func (uc *VehicleUseCase) GetByID(id string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}
	return toVehicleResponse(vehicle), nil
}

// Update actualiza un vehículo.
func (uc *VehicleUseCase) Update(id string, in dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}
	if in.LicensePlate != nil {
		vehicle.LicensePlate = *in.LicensePlate
	}
	if in.Brand != nil {
		vehicle.Brand = *in.Brand
	}
	if in.Model != nil {
		vehicle.Model = *in.Model
	}
	if in.Year != nil {
		vehicle.Year = *in.Year
	}
	if in.OwnerName != nil {
		vehicle.OwnerName = *in.OwnerName
	}
	if in.OwnerPhone != nil {
		vehicle.OwnerPhone = *in.OwnerPhone
	}
	if err := uc.repo.Update(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// List lista vehículos con paginación.
func (uc *VehicleUseCase) List(limit, offset int) (*dto.VehicleListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return &dto.VehicleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un vehículo por ID. Retorna (false, nil) si no existe.
func (uc *VehicleUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:           v.ID,
		LicensePlate: v.LicensePlate,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		OwnerName:    v.OwnerName,
		OwnerPhone:   v.OwnerPhone,
		CreatedAt:    v.CreatedAt,
	}
}
