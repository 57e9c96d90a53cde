package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices. La factura nace en
// pending con paid_amount en 0; el estado de pago nunca se recibe del cliente.
type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number" validate:"required"`
	SupplierID    string          `json:"supplier_id" validate:"required"`
	Description   string          `json:"description,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount" validate:"required"`
	InvoiceDate   time.Time       `json:"invoice_date" validate:"required"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id. No permite tocar
// paid_amount ni payment_status: esos solo mutan vía pagos.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	Description   *string          `json:"description,omitempty"`
	TotalAmount   *decimal.Decimal `json:"total_amount,omitempty"`
	InvoiceDate   *time.Time       `json:"invoice_date,omitempty"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	SupplierID    string          `json:"supplier_id"`
	Description   string          `json:"description,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	PaymentStatus string          `json:"payment_status"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateInvoicePaymentRequest body para POST /api/invoices/:id/payments.
type CreateInvoicePaymentRequest struct {
	PaymentAmount decimal.Decimal `json:"payment_amount" validate:"required"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// InvoicePaymentResponse pago en respuestas.
type InvoicePaymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BatchPayRequest body para POST /api/invoices/batch-pay.
type BatchPayRequest struct {
	InvoiceIDs []string `json:"invoice_ids" validate:"required,min=1"`
}

// BatchPayResponse resultado de la conciliación masiva.
type BatchPayResponse struct {
	PaidInvoices int `json:"paid_invoices"`
}
