package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/taller-api/internal/application/billing"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner toma un snapshot antes del callback y lo
// restaura si falla, imitando el rollback de una tx real.
// ──────────────────────────────────────────────────────────────────────────────

type fakePaymentRepo struct {
	payments map[string]*entity.InvoicePayment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entity.InvoicePayment)}
}

func (r *fakePaymentRepo) Create(p *entity.InvoicePayment) error { r.payments[p.ID] = p; return nil }
func (r *fakePaymentRepo) GetByID(id string) (*entity.InvoicePayment, error) {
	return r.payments[id], nil
}
func (r *fakePaymentRepo) List(limit, offset int) ([]*entity.InvoicePayment, error) {
	out := make([]*entity.InvoicePayment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakePaymentRepo) ListByInvoice(invoiceID string) ([]*entity.InvoicePayment, error) {
	var out []*entity.InvoicePayment
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakePaymentRepo) Delete(id string) (bool, error) {
	_, ok := r.payments[id]
	delete(r.payments, id)
	return ok, nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func newFakeInvoiceRepo(invoices ...*entity.Invoice) *fakeInvoiceRepo {
	m := make(map[string]*entity.Invoice)
	for _, inv := range invoices {
		m[inv.ID] = inv
	}
	return &fakeInvoiceRepo{invoices: m}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error { r.invoices[inv.ID] = inv; return nil }
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}
func (r *fakeInvoiceRepo) GetForUpdate(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}
func (r *fakeInvoiceRepo) GetByNumber(invoiceNumber string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.InvoiceNumber == invoiceNumber {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}
func (r *fakeInvoiceRepo) ListBySupplier(supplierID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.SupplierID == supplierID {
			out = append(out, inv)
		}
	}
	return out, nil
}
func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error { r.invoices[inv.ID] = inv; return nil }
func (r *fakeInvoiceRepo) UpdatePayment(id string, paidAmount decimal.Decimal, paymentStatus string) error {
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.PaidAmount = paidAmount
	inv.PaymentStatus = paymentStatus
	return nil
}
func (r *fakeInvoiceRepo) Delete(id string) (bool, error) {
	_, ok := r.invoices[id]
	delete(r.invoices, id)
	return ok, nil
}

type fakeTxRunner struct {
	paymentRepo *fakePaymentRepo
	invoiceRepo *fakeInvoiceRepo
}

func (tr *fakeTxRunner) Run(_ context.Context, fn func(repository.InvoicePaymentRepository, repository.InvoiceRepository) error) error {
	paySnap := make(map[string]*entity.InvoicePayment, len(tr.paymentRepo.payments))
	for k, v := range tr.paymentRepo.payments {
		c := *v
		paySnap[k] = &c
	}
	invSnap := make(map[string]*entity.Invoice, len(tr.invoiceRepo.invoices))
	for k, v := range tr.invoiceRepo.invoices {
		c := *v
		invSnap[k] = &c
	}
	if err := fn(tr.paymentRepo, tr.invoiceRepo); err != nil {
		tr.paymentRepo.payments = paySnap
		tr.invoiceRepo.invoices = invSnap
		return err
	}
	return nil
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newPaymentUseCase(invoices ...*entity.Invoice) (*appbilling.PaymentUseCase, *fakePaymentRepo, *fakeInvoiceRepo) {
	paymentRepo := newFakePaymentRepo()
	invoiceRepo := newFakeInvoiceRepo(invoices...)
	tx := &fakeTxRunner{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
	return appbilling.NewPaymentUseCase(tx, paymentRepo, invoiceRepo), paymentRepo, invoiceRepo
}

func pendingInvoice(id, supplierID, total string) *entity.Invoice {
	return &entity.Invoice{
		ID:            id,
		InvoiceNumber: "F-" + id,
		SupplierID:    supplierID,
		TotalAmount:   money(total),
		PaidAmount:    decimal.Zero,
		PaymentStatus: entity.PaymentStatusPending,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Delete: el estado siempre se deriva del pagado acumulado
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePayment_PagoParcial(t *testing.T) {
	uc, paymentRepo, invoiceRepo := newPaymentUseCase(pendingInvoice("i1", "s1", "1000"))

	resp, err := uc.Create(context.Background(), "i1", dto.CreateInvoicePaymentRequest{
		PaymentAmount: money("400"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, paymentRepo.payments, 1)

	inv := invoiceRepo.invoices["i1"]
	assert.True(t, inv.PaidAmount.Equal(money("400")))
	assert.Equal(t, entity.PaymentStatusPartial, inv.PaymentStatus)
}

func TestCreatePayment_CompletaLaFactura(t *testing.T) {
	uc, _, invoiceRepo := newPaymentUseCase(pendingInvoice("i1", "s1", "1000"))

	_, err := uc.Create(context.Background(), "i1", dto.CreateInvoicePaymentRequest{PaymentAmount: money("400")})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "i1", dto.CreateInvoicePaymentRequest{PaymentAmount: money("600")})
	require.NoError(t, err)

	inv := invoiceRepo.invoices["i1"]
	assert.True(t, inv.PaidAmount.Equal(money("1000")))
	assert.Equal(t, entity.PaymentStatusPaid, inv.PaymentStatus)
}

func TestCreatePayment_SobrepagoQuedaPaid(t *testing.T) {
	uc, _, invoiceRepo := newPaymentUseCase(pendingInvoice("i1", "s1", "1000"))

	_, err := uc.Create(context.Background(), "i1", dto.CreateInvoicePaymentRequest{PaymentAmount: money("1200")})
	require.NoError(t, err)

	inv := invoiceRepo.invoices["i1"]
	assert.True(t, inv.PaidAmount.Equal(money("1200")))
	assert.Equal(t, entity.PaymentStatusPaid, inv.PaymentStatus)
}

func TestCreatePayment_FacturaInexistenteHaceRollback(t *testing.T) {
	uc, paymentRepo, _ := newPaymentUseCase()

	_, err := uc.Create(context.Background(), "no-existe", dto.CreateInvoicePaymentRequest{PaymentAmount: money("100")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, paymentRepo.payments)
}

func TestCreatePayment_MontoInvalido(t *testing.T) {
	uc, _, _ := newPaymentUseCase(pendingInvoice("i1", "s1", "1000"))

	_, err := uc.Create(context.Background(), "i1", dto.CreateInvoicePaymentRequest{PaymentAmount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeletePayment_RetrocedeElEstado(t *testing.T) {
	// paid -> borrar el pago que completó -> vuelve a partial.
	uc, paymentRepo, invoiceRepo := newPaymentUseCase(pendingInvoice("i1", "s1", "1000"))

	_, err := uc.Create(context.Background(), "i1", dto.CreateInvoicePaymentRequest{PaymentAmount: money("400")})
	require.NoError(t, err)
	last, err := uc.Create(context.Background(), "i1", dto.CreateInvoicePaymentRequest{PaymentAmount: money("600")})
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPaid, invoiceRepo.invoices["i1"].PaymentStatus)

	deleted, err := uc.Delete(context.Background(), last.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, paymentRepo.payments, 1)

	inv := invoiceRepo.invoices["i1"]
	assert.True(t, inv.PaidAmount.Equal(money("400")))
	assert.Equal(t, entity.PaymentStatusPartial, inv.PaymentStatus)
}

func TestDeletePayment_NuncaDejaPagadoNegativo(t *testing.T) {
	// El pagado de la factura quedó desincronizado por debajo del pago
	// registrado; al borrar, el pagado se recorta a cero en vez de quedar negativo.
	invoice := pendingInvoice("i1", "s1", "1000")
	invoice.PaidAmount = money("100")
	invoice.PaymentStatus = entity.PaymentStatusPartial
	uc, paymentRepo, invoiceRepo := newPaymentUseCase(invoice)

	// pago registrado por 300 aunque la factura solo acumula 100
	paymentRepo.payments["p1"] = &entity.InvoicePayment{ID: "p1", InvoiceID: "i1", PaymentAmount: money("300")}

	deleted, err := uc.Delete(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, deleted)

	inv := invoiceRepo.invoices["i1"]
	assert.True(t, inv.PaidAmount.IsZero(), "el pagado se recorta a cero")
	assert.Equal(t, entity.PaymentStatusPending, inv.PaymentStatus)
}

func TestDeletePayment_Inexistente(t *testing.T) {
	uc, _, _ := newPaymentUseCase(pendingInvoice("i1", "s1", "1000"))

	deleted, err := uc.Delete(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.False(t, deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// BatchPay: una sola transacción, todo o nada
// ──────────────────────────────────────────────────────────────────────────────

func TestBatchPay_SinteizaPagosPorElRemanente(t *testing.T) {
	partial := pendingInvoice("i2", "s1", "800")
	partial.PaidAmount = money("300")
	partial.PaymentStatus = entity.PaymentStatusPartial
	uc, paymentRepo, invoiceRepo := newPaymentUseCase(pendingInvoice("i1", "s1", "1000"), partial)

	resp, err := uc.BatchPay(context.Background(), dto.BatchPayRequest{InvoiceIDs: []string{"i1", "i2"}})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.PaidInvoices)

	for _, id := range []string{"i1", "i2"} {
		inv := invoiceRepo.invoices[id]
		assert.Equal(t, entity.PaymentStatusPaid, inv.PaymentStatus)
		assert.True(t, inv.PaidAmount.Equal(inv.TotalAmount))
	}

	// Un pago sintetizado por factura, etiquetado con el método de lote.
	require.Len(t, paymentRepo.payments, 2)
	amounts := map[string]string{}
	for _, p := range paymentRepo.payments {
		assert.Equal(t, entity.BatchPaymentMethod, p.PaymentMethod)
		amounts[p.InvoiceID] = p.PaymentAmount.String()
	}
	assert.Equal(t, "1000", amounts["i1"])
	assert.Equal(t, "500", amounts["i2"], "solo el remanente de la parcial")
}

func TestBatchPay_FacturaYaPagadaNoGeneraPago(t *testing.T) {
	paid := pendingInvoice("i1", "s1", "500")
	paid.PaidAmount = money("500")
	paid.PaymentStatus = entity.PaymentStatusPaid
	uc, paymentRepo, _ := newPaymentUseCase(paid)

	resp, err := uc.BatchPay(context.Background(), dto.BatchPayRequest{InvoiceIDs: []string{"i1"}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.PaidInvoices)
	assert.Empty(t, paymentRepo.payments, "sin remanente no se sintetiza pago")
}

func TestBatchPay_FacturaInexistenteRevierteTodo(t *testing.T) {
	uc, paymentRepo, invoiceRepo := newPaymentUseCase(pendingInvoice("i1", "s1", "1000"))

	_, err := uc.BatchPay(context.Background(), dto.BatchPayRequest{InvoiceIDs: []string{"i1", "no-existe"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La primera factura del lote también queda intacta.
	inv := invoiceRepo.invoices["i1"]
	assert.True(t, inv.PaidAmount.IsZero())
	assert.Equal(t, entity.PaymentStatusPending, inv.PaymentStatus)
	assert.Empty(t, paymentRepo.payments)
}

func TestBatchPay_ListaVacia(t *testing.T) {
	uc, _, _ := newPaymentUseCase()

	_, err := uc.BatchPay(context.Background(), dto.BatchPayRequest{InvoiceIDs: nil})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestListByInvoice_FacturaInexistente(t *testing.T) {
	uc, _, _ := newPaymentUseCase()

	_, err := uc.ListByInvoice("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
