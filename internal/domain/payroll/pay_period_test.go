package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/payroll"
)

// ──────────────────────────────────────────────────────────────────────────────
// Período semanal: lunes a domingo
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentPayPeriod_Semanal_LunesADomingo(t *testing.T) {
	// Para cualquier día de la semana, la ventana contiene a now y arranca en lunes.
	for d := 0; d < 7; d++ {
		now := date(2024, time.June, 10+d) // 2024-06-10 es lunes
		p := payroll.CurrentPayPeriod(entity.PaymentFrequencyWeekly, now)

		assert.Equal(t, time.Monday, p.Start.Weekday(), "la semana debe arrancar en lunes (now=%s)", now)
		assert.Equal(t, time.Sunday, p.End.Weekday(), "la semana debe terminar en domingo (now=%s)", now)
		assert.True(t, p.Contains(now), "la ventana debe contener a now (now=%s)", now)
	}
}

func TestCurrentPayPeriod_Semanal_DomingoRetrocedeAlLunesAnterior(t *testing.T) {
	// 2024-06-16 es domingo: pertenece a la semana que empezó el lunes 10.
	now := date(2024, time.June, 16)
	p := payroll.CurrentPayPeriod(entity.PaymentFrequencyWeekly, now)

	assert.Equal(t, 10, p.Start.Day())
	assert.Equal(t, time.June, p.Start.Month())
	assert.Equal(t, 16, p.End.Day())
}

func TestCurrentPayPeriod_Semanal_CruceDeMes(t *testing.T) {
	// 2024-07-02 es martes: la semana empezó el lunes 1 de julio.
	// 2024-06-01 es sábado: la semana empezó el lunes 27 de mayo.
	p := payroll.CurrentPayPeriod(entity.PaymentFrequencyWeekly, date(2024, time.June, 1))
	assert.Equal(t, time.May, p.Start.Month())
	assert.Equal(t, 27, p.Start.Day())
	assert.Equal(t, time.June, p.End.Month())
	assert.Equal(t, 2, p.End.Day())
}

// ──────────────────────────────────────────────────────────────────────────────
// Período quincenal: 1-15 y 16-fin de mes
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentPayPeriod_Quincenal_Dia15PrimeraQuincena(t *testing.T) {
	p := payroll.CurrentPayPeriod(entity.PaymentFrequencyBiweekly, date(2024, time.June, 15))
	assert.Equal(t, 1, p.Start.Day())
	assert.Equal(t, 15, p.End.Day())
}

func TestCurrentPayPeriod_Quincenal_Dia16SegundaQuincena(t *testing.T) {
	p := payroll.CurrentPayPeriod(entity.PaymentFrequencyBiweekly, date(2024, time.June, 16))
	assert.Equal(t, 16, p.Start.Day())
	assert.Equal(t, 30, p.End.Day(), "junio termina el 30")
}

func TestCurrentPayPeriod_Quincenal_FinDeMesVariable(t *testing.T) {
	cases := []struct {
		name    string
		now     time.Time
		lastDay int
	}{
		{"enero 31", date(2024, time.January, 20), 31},
		{"febrero bisiesto 29", date(2024, time.February, 20), 29},
		{"febrero no bisiesto 28", date(2023, time.February, 20), 28},
		{"abril 30", date(2024, time.April, 25), 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := payroll.CurrentPayPeriod(entity.PaymentFrequencyBiweekly, tc.now)
			assert.Equal(t, tc.lastDay, p.End.Day())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Período mensual (por defecto)
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentPayPeriod_Mensual(t *testing.T) {
	p := payroll.CurrentPayPeriod(entity.PaymentFrequencyMonthly, date(2024, time.February, 10))
	assert.Equal(t, 1, p.Start.Day())
	assert.Equal(t, 29, p.End.Day())
}

func TestCurrentPayPeriod_FrecuenciaVaciaUsaMensual(t *testing.T) {
	p := payroll.CurrentPayPeriod("", date(2024, time.June, 10))
	assert.Equal(t, 1, p.Start.Day())
	assert.Equal(t, 30, p.End.Day())
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de horas y solapamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentPayPeriod_NormalizacionDeHoras(t *testing.T) {
	now := time.Date(2024, time.June, 10, 14, 33, 12, 0, time.UTC)
	p := payroll.CurrentPayPeriod(entity.PaymentFrequencyMonthly, now)

	require.Equal(t, 0, p.Start.Hour())
	require.Equal(t, 0, p.Start.Minute())
	assert.Equal(t, 23, p.End.Hour())
	assert.Equal(t, 59, p.End.Minute())
	assert.Equal(t, 59, p.End.Second())
}

func TestPayPeriod_Overlaps(t *testing.T) {
	// Quincena actual 1-15 de enero: solapa con [1,15], no con [16,31].
	p := payroll.CurrentPayPeriod(entity.PaymentFrequencyBiweekly, date(2024, time.January, 10))

	assert.True(t, p.Overlaps(date(2024, time.January, 1), date(2024, time.January, 15)))
	assert.False(t, p.Overlaps(date(2024, time.January, 16), date(2024, time.January, 31)))
	// Un solo día compartido alcanza.
	assert.True(t, p.Overlaps(date(2024, time.January, 15), date(2024, time.January, 20)))
}
