package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/billing"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso CRUD para facturas de proveedor. El pagado
// acumulado y el estado de pago no se editan por esta vía: mutan solo junto
// con el ledger de pagos.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	supplierRepo repository.SupplierRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, supplierRepo repository.SupplierRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, supplierRepo: supplierRepo}
}

// Create registra una factura en estado pending con pagado en cero.
// Valida proveedor existente y número de factura único.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !in.TotalAmount.GreaterThan(decimal.Zero) || in.InvoiceNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.invoiceRepo.GetByNumber(in.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: in.InvoiceNumber,
		SupplierID:    in.SupplierID,
		Description:   in.Description,
		TotalAmount:   in.TotalAmount,
		PaidAmount:    decimal.Zero,
		PaymentStatus: entity.PaymentStatusPending,
		InvoiceDate:   in.InvoiceDate,
		DueDate:       in.DueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GetByID obtiene una factura por ID.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice), nil
}

// Update actualiza una factura. Si cambia el total, el estado de pago se
// re-deriva contra el pagado acumulado vigente.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if in.InvoiceNumber != nil && *in.InvoiceNumber != invoice.InvoiceNumber {
		existing, err := uc.invoiceRepo.GetByNumber(*in.InvoiceNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		invoice.InvoiceNumber = *in.InvoiceNumber
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		invoice.SupplierID = *in.SupplierID
	}
	if in.Description != nil {
		invoice.Description = *in.Description
	}
	if in.TotalAmount != nil {
		if !in.TotalAmount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		invoice.TotalAmount = *in.TotalAmount
		invoice.PaymentStatus = billing.DerivePaymentStatus(invoice.PaidAmount, invoice.TotalAmount)
	}
	if in.InvoiceDate != nil {
		invoice.InvoiceDate = *in.InvoiceDate
	}
	if in.DueDate != nil {
		invoice.DueDate = in.DueDate
	}
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// List lista facturas con paginación.
func (uc *InvoiceUseCase) List(limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListBySupplier lista las facturas de un proveedor.
func (uc *InvoiceUseCase) ListBySupplier(supplierID string) (*dto.InvoiceListResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.invoiceRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{Items: items}, nil
}

// Delete elimina una factura por ID. Retorna (false, nil) si no existe.
func (uc *InvoiceUseCase) Delete(id string) (bool, error) {
	return uc.invoiceRepo.Delete(id)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		SupplierID:    inv.SupplierID,
		Description:   inv.Description,
		TotalAmount:   inv.TotalAmount,
		PaidAmount:    inv.PaidAmount,
		PendingAmount: inv.PendingAmount(),
		PaymentStatus: inv.PaymentStatus,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
