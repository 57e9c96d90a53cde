package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrNotEligible: el trabajador no es de planta o no tiene salario base;
	// bloquea por completo las operaciones de anticipo.
	ErrNotEligible = errors.New("trabajador no elegible para anticipos")

	// ErrMissingHireDate: sin fecha de ingreso no se puede calcular el saldo
	// de vacaciones; se rechaza antes de invocar el cálculo.
	ErrMissingHireDate = errors.New("el trabajador no tiene fecha de ingreso")

	// ErrInsufficientBalance: la solicitud excede el saldo disponible
	// (días de vacaciones o monto de anticipo). Usar con errors.Is; los
	// errores estructurados de abajo lo envuelven.
	ErrInsufficientBalance = errors.New("saldo insuficiente")
)

// InsufficientDaysError detalla un rechazo de vacaciones: la solicitud supera
// los días disponibles. Incluye ambos valores para mostrar al usuario.
type InsufficientDaysError struct {
	RequestedDays int
	AvailableDays int
}

func (e *InsufficientDaysError) Error() string {
	return fmt.Sprintf("los días solicitados (%d) exceden los días disponibles (%d)",
		e.RequestedDays, e.AvailableDays)
}

func (e *InsufficientDaysError) Unwrap() error { return ErrInsufficientBalance }

// ExceedsAvailableAdvanceError detalla un rechazo de anticipo: el monto supera
// lo disponible en el período de pago actual.
type ExceedsAvailableAdvanceError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *ExceedsAvailableAdvanceError) Error() string {
	return fmt.Sprintf("el monto del anticipo ($%s) excede el monto disponible ($%s)",
		e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

func (e *ExceedsAvailableAdvanceError) Unwrap() error { return ErrInsufficientBalance }
