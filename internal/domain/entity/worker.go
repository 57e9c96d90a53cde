package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de trabajador. Solo los de planta (direct) acumulan vacaciones
// y pueden solicitar anticipos de sueldo.
const (
	WorkerTypeDirect   = "direct"
	WorkerTypeContract = "contract"
)

// Frecuencias de pago válidas para Worker.
const (
	PaymentFrequencyWeekly   = "weekly"
	PaymentFrequencyBiweekly = "biweekly"
	PaymentFrequencyMonthly  = "monthly"
)

// Worker representa un trabajador del taller.
type Worker struct {
	ID               string
	FirstName        string
	LastName         string
	DocumentNumber   string
	Phone            string
	Email            string
	HireDate         *time.Time       // nil = sin fecha de ingreso; bloquea el cálculo de vacaciones
	BaseSalary       *decimal.Decimal // nil = sin salario base; bloquea anticipos
	PaymentFrequency string           // weekly, biweekly, monthly (vacío = monthly)
	WorkerType       string           // direct, contract
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
