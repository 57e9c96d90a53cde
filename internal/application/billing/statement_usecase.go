package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// StatementUseCase genera el estado de cuenta (PDF) de un proveedor:
// sus facturas con historial de pagos y saldos pendientes.
type StatementUseCase struct {
	supplierRepo repository.SupplierRepository
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.InvoicePaymentRepository
	generator    StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso inyectando sus dependencias.
func NewStatementUseCase(
	supplierRepo repository.SupplierRepository,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.InvoicePaymentRepository,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{
		supplierRepo: supplierRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		generator:    generator,
	}
}

// DownloadStatement recupera el proveedor con todas sus facturas y pagos y
// genera el PDF del estado de cuenta.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el proveedor no existe.
func (uc *StatementUseCase) DownloadStatement(ctx context.Context, supplierID string) (pdfBytes []byte, filename string, err error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, "", fmt.Errorf("statement: obtener proveedor: %w", err)
	}
	if supplier == nil {
		return nil, "", domain.ErrNotFound
	}

	invoices, err := uc.invoiceRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, "", fmt.Errorf("statement: obtener facturas: %w", err)
	}

	enriched := make([]InvoiceWithPayments, 0, len(invoices))
	for _, inv := range invoices {
		payments, pErr := uc.paymentRepo.ListByInvoice(inv.ID)
		if pErr != nil {
			return nil, "", fmt.Errorf("statement: obtener pagos de %s: %w", inv.InvoiceNumber, pErr)
		}
		enriched = append(enriched, InvoiceWithPayments{Invoice: inv, Payments: payments})
	}

	pdfBytes, err = uc.generator.GenerateSupplierStatement(ctx, supplier, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generación fallida: %w", err)
	}

	slug := strings.ReplaceAll(strings.ToLower(supplier.Name), " ", "_")
	filename = fmt.Sprintf("estado_cuenta_%s.pdf", slug)
	return pdfBytes, filename, nil
}
