package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSalaryAdvanceRequest body para POST /api/salary-advances.
// La ventana de período se calcula en el servidor a partir de la frecuencia
// de pago del trabajador si no viene en el request.
type CreateSalaryAdvanceRequest struct {
	WorkerID    string          `json:"worker_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	AdvanceDate *time.Time      `json:"advance_date,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// SalaryAdvanceResponse anticipo en respuestas.
type SalaryAdvanceResponse struct {
	ID                 string          `json:"id"`
	WorkerID           string          `json:"worker_id"`
	Amount             decimal.Decimal `json:"amount"`
	AdvanceDate        time.Time       `json:"advance_date"`
	PaymentPeriodStart time.Time       `json:"payment_period_start"`
	PaymentPeriodEnd   time.Time       `json:"payment_period_end"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// SalaryAdvanceListResponse lista de anticipos.
type SalaryAdvanceListResponse struct {
	Items []SalaryAdvanceResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// AvailableAdvanceResponse capacidad de anticipo en el período actual para
// GET /api/salary-advances/worker/:workerId/available.
// AvailableAmount puede ser negativo: señala que ya se sobre-anticipó.
type AvailableAdvanceResponse struct {
	BaseSalary         decimal.Decimal `json:"base_salary"`
	PaymentFrequency   string          `json:"payment_frequency"`
	TotalAdvances      decimal.Decimal `json:"total_advances"`
	AvailableAmount    decimal.Decimal `json:"available_amount"`
	CurrentPeriodStart time.Time       `json:"current_period_start"`
	CurrentPeriodEnd   time.Time       `json:"current_period_end"`
}
