// Package pdf implementa el resumen imprimible de una operación de comercio
// exterior.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de operación  │  N° Operación + Fecha + Estado│
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Cliente o Proveedor según el tipo              │
//	│  RUTA: País/Puerto origen → País/Puerto destino + Transporte│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: COSTO TOTAL DE LA OPERACIÓN                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/agrocomercio-api/internal/application/trade"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 90, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ trade.OperacionPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa trade.OperacionPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOperacionPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOperacionPDF(_ context.Context, doc *trade.OperacionParaDocumento) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Operación", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc.Operacion))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contraparteRow(doc))
	m.AddRows(rutaRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(doc.Detalles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc.Operacion))

	if doc.Operacion.Observaciones != nil && *doc.Operacion.Observaciones != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Observaciones: "+*doc.Operacion.Observaciones, props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	}

	pdfDoc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfDoc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tipo de operación (izq) y número + fecha + estado (der).
func headerRow(op *entity.Operacion) core.Row {
	titulo := "OPERACIÓN DE IMPORTACIÓN"
	if op.EsExportacion() {
		titulo = "OPERACIÓN DE EXPORTACIÓN"
	}
	fecha := op.Fecha.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comercio exterior de frutas y verduras", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("OPERACIÓN N° %d", op.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Estado: "+op.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// contraparteRow: cliente (exportación) o proveedor (importación).
func contraparteRow(doc *trade.OperacionParaDocumento) core.Row {
	rol, nombre, contacto := "CONTRAPARTE", "—", ""
	switch {
	case doc.Operacion.EsExportacion() && doc.Cliente != nil:
		rol = "CLIENTE"
		nombre = doc.Cliente.Nombre
		contacto = fmt.Sprintf("Email: %s   |   Tel: %s",
			derefOr(doc.Cliente.Email, "—"), derefOr(doc.Cliente.Telefono, "—"))
	case doc.Operacion.EsImportacion() && doc.Proveedor != nil:
		rol = "PROVEEDOR"
		nombre = doc.Proveedor.Nombre
		contacto = fmt.Sprintf("Email: %s   |   Tel: %s",
			derefOr(doc.Proveedor.Email, "—"), derefOr(doc.Proveedor.Telefono, "—"))
	}

	return row.New(14).Add(
		col.New(12).Add(
			text.New(rol, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contacto, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// rutaRow: origen → destino + medio de transporte.
func rutaRow(doc *trade.OperacionParaDocumento) core.Row {
	origen := lugar(doc.PaisOrigen, doc.PuertoOrigen)
	destino := lugar(doc.PaisDestino, doc.PuertoDestino)
	medio := "—"
	if doc.MedioTransporte != nil {
		medio = doc.MedioTransporte.Tipo
		if doc.MedioTransporte.Empresa != nil {
			medio += " (" + *doc.MedioTransporte.Empresa + ")"
		}
	}

	return row.New(12).Add(
		col.New(12).Add(
			text.New("RUTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Origen: %s   →   Destino: %s   |   Transporte: %s",
				origen, destino, medio,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de detalle.
func tableDetailRows(detalles []trade.DetalleParaDocumento) []core.Row {
	result := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				d.Cantidad.String()+" "+d.UnidadMedida,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				d.ProductoNombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+d.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+d.Subtotal().StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: costo total alineado a la derecha.
func totalRow(op *entity.Operacion) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("COSTO TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+op.CostoTotal.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func derefOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

// lugar "País / Puerto" con los datos disponibles.
func lugar(pais *entity.Pais, puerto *entity.Puerto) string {
	switch {
	case pais != nil && puerto != nil:
		return pais.Nombre + " / " + puerto.Nombre
	case pais != nil:
		return pais.Nombre
	case puerto != nil:
		return puerto.Nombre
	}
	return "—"
}
