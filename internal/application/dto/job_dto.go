package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateJobRequest body para POST /api/jobs. El trabajo nace en pending con
// advance_amount en 0.
type CreateJobRequest struct {
	VehicleID   string          `json:"vehicle_id" validate:"required"`
	WorkerID    string          `json:"worker_id" validate:"required"`
	Description string          `json:"description" validate:"required"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
}

// UpdateJobRequest body para PUT /api/jobs/:id. El estado puede fijarse a
// mano (incluido cancelled); advance_amount no se toca por esta vía.
type UpdateJobRequest struct {
	VehicleID   *string          `json:"vehicle_id,omitempty"`
	WorkerID    *string          `json:"worker_id,omitempty"`
	Description *string          `json:"description,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	Status      *string          `json:"status,omitempty"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
}

// JobResponse trabajo en respuestas.
type JobResponse struct {
	ID            string          `json:"id"`
	VehicleID     string          `json:"vehicle_id"`
	WorkerID      string          `json:"worker_id"`
	Description   string          `json:"description"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	Status        string          `json:"status"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// JobListResponse lista paginada de trabajos.
type JobListResponse struct {
	Items []JobResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// CreateAdvanceRequest body para POST /api/advances y
// POST /api/jobs/:id/advances (en la segunda forma JobID viene en la URL).
type CreateAdvanceRequest struct {
	JobID       string          `json:"job_id"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description,omitempty"`
	AdvanceDate *time.Time      `json:"advance_date,omitempty"`
}

// AdvanceResponse adelanto de trabajo en respuestas.
type AdvanceResponse struct {
	ID          string          `json:"id"`
	JobID       string          `json:"job_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	AdvanceDate time.Time       `json:"advance_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AdvanceListResponse lista de adelantos.
type AdvanceListResponse struct {
	Items []AdvanceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
