// Package customs arma la declaración aduanera XML que acompaña a una
// operación de comercio exterior.
package customs

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/tu-usuario/agrocomercio-api/internal/application/trade"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

var _ trade.DeclaracionXMLBuilder = (*DeclaracionBuilder)(nil)

// DeclaracionBuilder implementa trade.DeclaracionXMLBuilder con etree.
type DeclaracionBuilder struct{}

// NewDeclaracionBuilder construye el builder.
func NewDeclaracionBuilder() *DeclaracionBuilder { return &DeclaracionBuilder{} }

// BuildDeclaracion serializa la operación como declaración aduanera XML.
func (b *DeclaracionBuilder) BuildDeclaracion(doc *trade.OperacionParaDocumento) ([]byte, error) {
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := d.CreateElement("DeclaracionAduanera")
	root.CreateAttr("version", "1.0")

	op := doc.Operacion
	operacion := root.CreateElement("Operacion")
	operacion.CreateElement("Numero").SetText(fmt.Sprintf("%d", op.ID))
	operacion.CreateElement("Tipo").SetText(op.Tipo)
	operacion.CreateElement("Fecha").SetText(op.Fecha.Format("2006-01-02"))
	operacion.CreateElement("Estado").SetText(op.Estado)
	operacion.CreateElement("CostoTotal").SetText(op.CostoTotal.StringFixed(2))

	contraparte := root.CreateElement("Contraparte")
	switch {
	case op.EsExportacion() && doc.Cliente != nil:
		contraparte.CreateAttr("rol", "cliente")
		contraparte.CreateElement("Nombre").SetText(doc.Cliente.Nombre)
	case op.EsImportacion() && doc.Proveedor != nil:
		contraparte.CreateAttr("rol", "proveedor")
		contraparte.CreateElement("Nombre").SetText(doc.Proveedor.Nombre)
	}

	ruta := root.CreateElement("Ruta")
	agregarExtremo(ruta, "Origen", doc.PaisOrigen, doc.PuertoOrigen)
	agregarExtremo(ruta, "Destino", doc.PaisDestino, doc.PuertoDestino)
	if doc.MedioTransporte != nil {
		transporte := ruta.CreateElement("Transporte")
		transporte.CreateElement("Tipo").SetText(doc.MedioTransporte.Tipo)
		if doc.MedioTransporte.Empresa != nil {
			transporte.CreateElement("Empresa").SetText(*doc.MedioTransporte.Empresa)
		}
	}

	mercancias := root.CreateElement("Mercancias")
	for _, det := range doc.Detalles {
		linea := mercancias.CreateElement("Linea")
		linea.CreateAttr("id", fmt.Sprintf("%d", det.ID))
		linea.CreateElement("Producto").SetText(det.ProductoNombre)
		cantidad := linea.CreateElement("Cantidad")
		cantidad.CreateAttr("unidad", det.UnidadMedida)
		cantidad.SetText(det.Cantidad.String())
		linea.CreateElement("PrecioUnitario").SetText(det.PrecioUnitario.StringFixed(2))
		linea.CreateElement("Subtotal").SetText(det.Subtotal().StringFixed(2))
	}

	d.Indent(2)
	out, err := d.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("declaracion: serializar XML: %w", err)
	}
	return out, nil
}

// agregarExtremo escribe Origen o Destino con país y puerto si están presentes.
func agregarExtremo(parent *etree.Element, nombre string, pais *entity.Pais, puerto *entity.Puerto) {
	extremo := parent.CreateElement(nombre)
	if pais != nil {
		p := extremo.CreateElement("Pais")
		p.CreateAttr("codigoISO", pais.CodigoISO)
		p.SetText(pais.Nombre)
	}
	if puerto != nil {
		extremo.CreateElement("Puerto").SetText(puerto.Nombre)
	}
}
