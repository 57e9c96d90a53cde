package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/taller-api/internal/application/billing"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error                    { return nil }
func (r *fakeSupplierRepo) Delete(id string) (bool, error)                     { return false, nil }

type fakeStatementGenerator struct {
	captured []appbilling.InvoiceWithPayments
}

func (g *fakeStatementGenerator) GenerateSupplierStatement(_ context.Context, _ *entity.Supplier, invoices []appbilling.InvoiceWithPayments) ([]byte, error) {
	g.captured = invoices
	return []byte("%PDF-fake"), nil
}

func TestDownloadStatement_AgrupaFacturasConPagos(t *testing.T) {
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Name: "Repuestos El Norte"},
	}}
	invoiceRepo := newFakeInvoiceRepo(
		pendingInvoice("i1", "s1", "1000"),
		pendingInvoice("i2", "otro-proveedor", "500"),
	)
	paymentRepo := newFakePaymentRepo()
	paymentRepo.payments["p1"] = &entity.InvoicePayment{ID: "p1", InvoiceID: "i1", PaymentAmount: money("400")}

	gen := &fakeStatementGenerator{}
	uc := appbilling.NewStatementUseCase(supplierRepo, invoiceRepo, paymentRepo, gen)

	pdf, filename, err := uc.DownloadStatement(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "estado_cuenta_repuestos_el_norte.pdf", filename)

	require.Len(t, gen.captured, 1, "solo facturas del proveedor pedido")
	assert.Equal(t, "i1", gen.captured[0].Invoice.ID)
	assert.Len(t, gen.captured[0].Payments, 1)
}

func TestDownloadStatement_ProveedorInexistente(t *testing.T) {
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}
	uc := appbilling.NewStatementUseCase(supplierRepo, newFakeInvoiceRepo(), newFakePaymentRepo(), &fakeStatementGenerator{})

	_, _, err := uc.DownloadStatement(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
