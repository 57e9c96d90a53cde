package dto

import "time"

// CreateVehicleRequest body para POST /api/vehicles.
type CreateVehicleRequest struct {
	LicensePlate string `json:"license_plate" validate:"required,min=1,max=20"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	OwnerName    string `json:"owner_name,omitempty"`
	OwnerPhone   string `json:"owner_phone,omitempty"`
}

// UpdateVehicleRequest body para PUT /api/vehicles/:id.
type UpdateVehicleRequest struct {
	LicensePlate *string `json:"license_plate,omitempty"`
	Brand        *string `json:"brand,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	OwnerName    *string `json:"owner_name,omitempty"`
	OwnerPhone   *string `json:"owner_phone,omitempty"`
}

// VehicleResponse vehículo en respuestas.
type VehicleResponse struct {
	ID           string    `json:"id"`
	LicensePlate string    `json:"license_plate"`
	Brand        string    `json:"brand,omitempty"`
	Model        string    `json:"model,omitempty"`
	Year         int       `json:"year,omitempty"`
	OwnerName    string    `json:"owner_name,omitempty"`
	OwnerPhone   string    `json:"owner_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// VehicleListResponse lista paginada de vehículos.
type VehicleListResponse struct {
	Items []VehicleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
