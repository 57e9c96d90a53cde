package dto

import "time"

// CreateVacationRequest body para POST /api/vacations.
// La solicitud nace en estado requested; la validación de saldo ocurre antes
// de persistir.
type CreateVacationRequest struct {
	WorkerID  string    `json:"worker_id" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	TotalDays int       `json:"total_days" validate:"required,min=1"`
	Notes     string    `json:"notes,omitempty"`
}

// UpdateVacationRequest body para PUT /api/vacations/:id.
type UpdateVacationRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	TotalDays *int       `json:"total_days,omitempty"`
	Status    *string    `json:"status,omitempty"` // requested, approved, rejected, completed
	Notes     *string    `json:"notes,omitempty"`
}

// VacationResponse vacación en respuestas.
type VacationResponse struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"worker_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TotalDays int       `json:"total_days"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VacationListResponse lista paginada de vacaciones.
type VacationListResponse struct {
	Items []VacationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
