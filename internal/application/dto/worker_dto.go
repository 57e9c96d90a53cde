package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkerRequest body para POST /api/workers.
type CreateWorkerRequest struct {
	FirstName        string           `json:"first_name" validate:"required,min=1,max=200"`
	LastName         string           `json:"last_name" validate:"required,min=1,max=200"`
	DocumentNumber   string           `json:"document_number,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	Email            string           `json:"email,omitempty"`
	HireDate         *time.Time       `json:"hire_date,omitempty"`
	BaseSalary       *decimal.Decimal `json:"base_salary,omitempty"`
	PaymentFrequency string           `json:"payment_frequency,omitempty"` // weekly, biweekly, monthly
	WorkerType       string           `json:"worker_type,omitempty"`       // direct, contract
}

// UpdateWorkerRequest body para PUT /api/workers/:id (campos opcionales).
type UpdateWorkerRequest struct {
	FirstName        *string          `json:"first_name,omitempty"`
	LastName         *string          `json:"last_name,omitempty"`
	DocumentNumber   *string          `json:"document_number,omitempty"`
	Phone            *string          `json:"phone,omitempty"`
	Email            *string          `json:"email,omitempty"`
	HireDate         *time.Time       `json:"hire_date,omitempty"`
	BaseSalary       *decimal.Decimal `json:"base_salary,omitempty"`
	PaymentFrequency *string          `json:"payment_frequency,omitempty"`
	WorkerType       *string          `json:"worker_type,omitempty"`
	IsActive         *bool            `json:"is_active,omitempty"`
}

// WorkerResponse trabajador en respuestas.
type WorkerResponse struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	DocumentNumber   string           `json:"document_number,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	Email            string           `json:"email,omitempty"`
	HireDate         *time.Time       `json:"hire_date,omitempty"`
	BaseSalary       *decimal.Decimal `json:"base_salary,omitempty"`
	PaymentFrequency string           `json:"payment_frequency,omitempty"`
	WorkerType       string           `json:"worker_type"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// WorkerListResponse lista paginada de trabajadores.
type WorkerListResponse struct {
	Items []WorkerResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// VacationBalanceResponse saldo de vacaciones para
// GET /api/workers/:id/vacation-balance.
type VacationBalanceResponse struct {
	WorkerID      string    `json:"worker_id"`
	HireDate      time.Time `json:"hire_date"`
	MonthsWorked  int       `json:"months_worked"`
	AccruedDays   int       `json:"accrued_days"`
	UsedDays      int       `json:"used_days"`
	PendingDays   int       `json:"pending_days"`
	AvailableDays int       `json:"available_days"`
}
