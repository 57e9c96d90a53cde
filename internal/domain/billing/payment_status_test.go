package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/taller-api/internal/domain/billing"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

func TestDerivePaymentStatus(t *testing.T) {
	total := decimal.NewFromInt(1000)

	cases := []struct {
		name     string
		paid     decimal.Decimal
		expected string
	}{
		{"sin pagos", decimal.Zero, entity.PaymentStatusPending},
		{"pago parcial", decimal.NewFromInt(400), entity.PaymentStatusPartial},
		{"un peso antes del total", decimal.NewFromInt(999), entity.PaymentStatusPartial},
		{"pago exacto", decimal.NewFromInt(1000), entity.PaymentStatusPaid},
		{"sobrepago", decimal.NewFromInt(1200), entity.PaymentStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, billing.DerivePaymentStatus(tc.paid, total))
		})
	}
}
