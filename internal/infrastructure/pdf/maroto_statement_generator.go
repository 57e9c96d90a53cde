// Package pdf implementa la generación del estado de cuenta de proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del proveedor  │  Fecha de emisión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Dirección / Tel / Email                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Factura | Fecha | Total | Pagado | Saldo | Estado   │
//	│    (por factura, sus pagos indentados)                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Facturado / Pagado / SALDO PENDIENTE              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/taller-api/internal/application/billing"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa billing.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateSupplierStatement genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateSupplierStatement(
	_ context.Context,
	supplier *entity.Supplier,
	invoices []appbilling.InvoiceWithPayments,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta de Proveedor", true).
		WithAuthor(supplier.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range invoiceRows(invoices) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoices))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del proveedor (izq) y fecha de emisión (der).
func headerRow(supplier *entity.Supplier) core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(supplier.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Contacto: "+nonEmpty(supplier.ContactName, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// contactRow: datos de contacto del proveedor.
func contactRow(supplier *entity.Supplier) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(supplier.Address, "—"),
				nonEmpty(supplier.Phone, "—"),
				nonEmpty(supplier.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de facturas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Factura", 3, align.Left),
		h("Fecha", 2, align.Center),
		h("Total", 2, align.Right),
		h("Pagado", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("Estado", 1, align.Center),
	)
}

// invoiceRows: una fila por factura, seguida de sus pagos indentados.
func invoiceRows(invoices []appbilling.InvoiceWithPayments) []core.Row {
	result := make([]core.Row, 0, len(invoices))
	for _, iwp := range invoices {
		inv := iwp.Invoice
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(inv.InvoiceDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New("$"+formatMoney(inv.TotalAmount.StringFixed(0)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New("$"+formatMoney(inv.PaidAmount.StringFixed(0)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New("$"+formatMoney(inv.PendingAmount().StringFixed(0)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(statusLabel(inv.PaymentStatus), props.Text{
				Size: 7, Align: align.Center, Top: 1, Color: statusColor(inv.PaymentStatus),
			})),
		))

		for _, p := range iwp.Payments {
			result = append(result, row.New(5).Add(
				col.New(3).Add(text.New("   · "+nonEmpty(p.PaymentMethod, "pago"), props.Text{
					Size: 7, Align: align.Left, Top: 0.5, Left: 3, Color: colorGray,
				})),
				col.New(2).Add(text.New(p.PaymentDate.Format("02/01/2006"), props.Text{
					Size: 7, Align: align.Center, Top: 0.5, Color: colorGray,
				})),
				col.New(2),
				col.New(2).Add(text.New("$"+formatMoney(p.PaymentAmount.StringFixed(0)), props.Text{
					Size: 7, Align: align.Right, Top: 0.5, Right: 1, Color: colorGray,
				})),
				col.New(3),
			))
		}
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(invoices []appbilling.InvoiceWithPayments) core.Row {
	totalBilled := decimal.Zero
	totalPaid := decimal.Zero
	for _, iwp := range invoices {
		totalBilled = totalBilled.Add(iwp.Invoice.TotalAmount)
		totalPaid = totalPaid.Add(iwp.Invoice.PaidAmount)
	}
	outstanding := totalBilled.Sub(totalPaid)

	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := text.New("SALDO PENDIENTE:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorRed, Right: 2, Top: 14,
	})
	grandValue := text.New("$"+formatMoney(outstanding.StringFixed(0)), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorRed, Right: 1, Top: 14,
	})

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Total facturado:", 2),
			label("Total pagado:", 7),
			grandLabel,
		),
		col.New(3).Add(
			value("$"+formatMoney(totalBilled.StringFixed(0)), 2),
			value("$"+formatMoney(totalPaid.StringFixed(0)), 7),
			grandValue,
		),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case entity.PaymentStatusPaid:
		return "PAGADA"
	case entity.PaymentStatusPartial:
		return "PARCIAL"
	default:
		return "PENDIENTE"
	}
}

func statusColor(status string) *props.Color {
	if status == entity.PaymentStatusPaid {
		return colorPrimary
	}
	return colorRed
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
