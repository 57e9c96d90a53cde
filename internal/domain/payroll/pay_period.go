package payroll

import (
	"time"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// PayPeriod es la ventana del período de pago actual. Start queda normalizado
// a las 00:00:00.000 de su día y End a las 23:59:59.999 del suyo.
type PayPeriod struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del período [Start, End].
func (p PayPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Overlaps indica si la ventana [otherStart, otherEnd] comparte al menos un
// instante con el período. Es el criterio para atribuir un anticipo al
// período actual aunque sus límites guardados no coincidan exactamente.
func (p PayPeriod) Overlaps(otherStart, otherEnd time.Time) bool {
	return !otherStart.After(p.End) && !otherEnd.Before(p.Start)
}

// CurrentPayPeriod devuelve la ventana del período de pago que contiene a now
// según la frecuencia del trabajador:
//
//	weekly:   lunes a domingo de la semana actual (domingo pertenece a la
//	          semana que empezó el lunes anterior)
//	biweekly: quincenas fijas del mes, días 1-15 y 16-fin de mes
//	monthly:  día 1 a último día del mes (por defecto para frecuencia vacía
//	          o desconocida)
func CurrentPayPeriod(frequency string, now time.Time) PayPeriod {
	var start, end time.Time

	switch frequency {
	case entity.PaymentFrequencyWeekly:
		// Lunes de la semana ISO: domingo (weekday 0) retrocede al lunes anterior.
		weekday := int(now.Weekday())
		offset := 1 - weekday
		if weekday == 0 {
			offset = -6
		}
		monday := now.AddDate(0, 0, offset)
		start = startOfDay(monday)
		end = endOfDay(monday.AddDate(0, 0, 6))

	case entity.PaymentFrequencyBiweekly:
		if now.Day() <= 15 {
			start = startOfDay(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
			end = endOfDay(time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, now.Location()))
		} else {
			start = startOfDay(time.Date(now.Year(), now.Month(), 16, 0, 0, 0, 0, now.Location()))
			end = endOfDay(lastDayOfMonth(now))
		}

	default: // monthly
		start = startOfDay(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
		end = endOfDay(lastDayOfMonth(now))
	}

	return PayPeriod{Start: start, End: end}
}

// lastDayOfMonth devuelve el último día válido del mes de t (febrero bisiesto incluido).
func lastDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
