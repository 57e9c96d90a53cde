package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/payroll"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func vacationsOf(days ...int) []entity.Vacation {
	out := make([]entity.Vacation, 0, len(days))
	for _, d := range days {
		out = append(out, entity.Vacation{TotalDays: d})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthsWorked — solo meses calendario completos
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthsWorked_MesesExactos(t *testing.T) {
	// Contratado exactamente N meses atrás, mismo día del mes -> N meses.
	cases := []struct {
		name     string
		hire     time.Time
		now      time.Time
		expected int
	}{
		{"cero meses el mismo día", date(2024, time.March, 10), date(2024, time.March, 10), 0},
		{"un mes exacto", date(2024, time.February, 10), date(2024, time.March, 10), 1},
		{"cinco meses exactos", date(2023, time.October, 1), date(2024, time.March, 1), 5},
		{"doce meses cruzando año", date(2023, time.March, 15), date(2024, time.March, 15), 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, payroll.MonthsWorked(tc.hire, tc.now))
		})
	}
}

func TestMonthsWorked_MesParcialNoCuenta(t *testing.T) {
	// Contratado el 31 de enero, evaluado el 1 de marzo: solo un mes completo
	// (el tramo feb-28 -> mar-1 no llega al día 31).
	assert.Equal(t, 1, payroll.MonthsWorked(date(2024, time.January, 31), date(2024, time.March, 1)))

	// Un día antes de cumplir el mes -> 0.
	assert.Equal(t, 0, payroll.MonthsWorked(date(2024, time.March, 10), date(2024, time.April, 9)))
	// El día exacto del cumplimiento -> 1.
	assert.Equal(t, 1, payroll.MonthsWorked(date(2024, time.March, 10), date(2024, time.April, 10)))
}

func TestMonthsWorked_FechaFuturaRecortaACero(t *testing.T) {
	assert.Equal(t, 0, payroll.MonthsWorked(date(2025, time.June, 1), date(2024, time.March, 1)),
		"fecha de ingreso futura debe recortar a 0, no devolver negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// CalculateVacationBalance — saldo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateVacationBalance_EscenarioCompleto(t *testing.T) {
	// Trabajador con 5 meses exactos, 2 días aprobados y 1 pendiente.
	now := date(2024, time.June, 1)
	hire := date(2024, time.January, 1)

	b := payroll.CalculateVacationBalance("w-1", hire,
		vacationsOf(2), vacationsOf(1), now)

	assert.Equal(t, 5, b.MonthsWorked)
	assert.Equal(t, 5, b.AccruedDays)
	assert.Equal(t, 2, b.UsedDays)
	assert.Equal(t, 1, b.PendingDays)
	assert.Equal(t, 2, b.AvailableDays)
}

func TestCalculateVacationBalance_DisponibleNegativoNoSeRecorta(t *testing.T) {
	// Contratado en el futuro: 0 acumulados; usados+pendientes dejan el
	// disponible en negativo y el cálculo NO lo recorta a cero.
	now := date(2024, time.March, 1)
	hire := date(2024, time.December, 1)

	b := payroll.CalculateVacationBalance("w-1", hire,
		vacationsOf(3, 2), vacationsOf(1), now)

	assert.Equal(t, 0, b.AccruedDays)
	assert.Equal(t, 5, b.UsedDays)
	assert.Equal(t, 1, b.PendingDays)
	assert.Equal(t, -6, b.AvailableDays)
}

func TestCalculateVacationBalance_InvarianteDisponible(t *testing.T) {
	// availableDays == accrued - used - pending, siempre.
	b := payroll.CalculateVacationBalance("w-1", date(2020, time.January, 15),
		vacationsOf(10, 5), vacationsOf(4, 2), date(2024, time.July, 20))

	assert.Equal(t, b.AccruedDays-b.UsedDays-b.PendingDays, b.AvailableDays)
}

// ──────────────────────────────────────────────────────────────────────────────
// CanRequestVacation — límite inclusivo
// ──────────────────────────────────────────────────────────────────────────────

func TestCanRequestVacation(t *testing.T) {
	assert.True(t, payroll.CanRequestVacation(5, 3))
	assert.True(t, payroll.CanRequestVacation(5, 5), "solicitar exactamente el disponible es válido")
	assert.False(t, payroll.CanRequestVacation(5, 6))
	assert.False(t, payroll.CanRequestVacation(-2, 1), "con saldo negativo toda solicitud se rechaza")
	assert.True(t, payroll.CanRequestVacation(0, 0))
}
