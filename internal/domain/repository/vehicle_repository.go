package repository

import "github.com/jhoicas/taller-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para Vehicle.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	List(limit, offset int) ([]*entity.Vehicle, error)
	Update(vehicle *entity.Vehicle) error
	Delete(id string) (bool, error)
}
