// Package payroll contiene los servicios de dominio de nómina del taller:
// saldo de vacaciones (1 día por mes completo trabajado) y períodos de pago
// para anticipos de sueldo. Son funciones puras: reciben la fecha de
// evaluación como parámetro y no tocan reloj ni base de datos.
package payroll

import (
	"time"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// VacationBalance es el saldo de vacaciones de un trabajador a una fecha.
// AvailableDays puede ser negativo: el cálculo nunca recorta; la validación
// de suficiencia es responsabilidad del llamador (CanRequestVacation).
type VacationBalance struct {
	WorkerID      string
	HireDate      time.Time
	MonthsWorked  int
	AccruedDays   int
	UsedDays      int
	PendingDays   int
	AvailableDays int
}

// MonthsWorked devuelve los meses calendario COMPLETOS entre hireDate y now.
// El mes final parcial no cuenta: si el día de now es anterior al día de
// ingreso, se descuenta un mes. Fechas de ingreso futuras recortan a 0.
func MonthsWorked(hireDate, now time.Time) int {
	months := (now.Year()-hireDate.Year())*12 + int(now.Month()) - int(hireDate.Month())
	if now.Day() < hireDate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// AccruedDays devuelve los días de vacaciones acumulados.
// Regla fija: exactamente 1 día por mes completo trabajado.
func AccruedDays(monthsWorked int) int {
	return monthsWorked
}

// SumDays suma TotalDays sobre un conjunto de vacaciones.
func SumDays(vacations []entity.Vacation) int {
	total := 0
	for _, v := range vacations {
		total += v.TotalDays
	}
	return total
}

// CalculateVacationBalance calcula el saldo completo de un trabajador.
// approved son las vacaciones en estado approved/completed (días usados);
// requested las que están en requested (días pendientes de aprobación).
func CalculateVacationBalance(
	workerID string,
	hireDate time.Time,
	approved []entity.Vacation,
	requested []entity.Vacation,
	now time.Time,
) VacationBalance {
	monthsWorked := MonthsWorked(hireDate, now)
	accrued := AccruedDays(monthsWorked)
	used := SumDays(approved)
	pending := SumDays(requested)

	return VacationBalance{
		WorkerID:      workerID,
		HireDate:      hireDate,
		MonthsWorked:  monthsWorked,
		AccruedDays:   accrued,
		UsedDays:      used,
		PendingDays:   pending,
		AvailableDays: accrued - used - pending,
	}
}

// CanRequestVacation valida si el saldo alcanza para una nueva solicitud.
// El límite es inclusivo: requestedDays == availableDays es válido.
func CanRequestVacation(availableDays, requestedDays int) bool {
	return requestedDays <= availableDays
}
