package customs_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/agrocomercio-api/internal/application/trade"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/infrastructure/customs"
)

func ptr[T any](v T) *T { return &v }

// documentoDeExportacion fixture: exportación de plátanos Ecuador → Alemania.
func documentoDeExportacion() *trade.OperacionParaDocumento {
	return &trade.OperacionParaDocumento{
		Operacion: &entity.Operacion{
			ID:         42,
			Tipo:       entity.OperacionTipoExportacion,
			Fecha:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			Estado:     "confirmada",
			CostoTotal: decimal.RequireFromString("75.00"),
		},
		Cliente:     &entity.Cliente{ID: 1, Nombre: "Frucht Import GmbH"},
		PaisOrigen:  &entity.Pais{ID: 1, Nombre: "Ecuador", CodigoISO: "EC"},
		PaisDestino: &entity.Pais{ID: 2, Nombre: "Alemania", CodigoISO: "DE"},
		PuertoOrigen: &entity.Puerto{
			ID: 1, Nombre: "Puerto de Guayaquil", PaisID: 1,
		},
		MedioTransporte: &entity.MedioTransporte{
			ID: 1, Tipo: "maritimo", Empresa: ptr("Naviera del Pacífico"),
		},
		Detalles: []trade.DetalleParaDocumento{
			{
				DetalleOperacion: entity.DetalleOperacion{
					ID:             7,
					ProductoID:     1,
					OperacionID:    42,
					Cantidad:       decimal.NewFromInt(30),
					PrecioUnitario: decimal.RequireFromString("2.50"),
				},
				ProductoNombre: "Plátano",
				UnidadMedida:   "kg",
			},
		},
	}
}

func TestDeclaracionBuilder_EstructuraCompleta(t *testing.T) {
	builder := customs.NewDeclaracionBuilder()

	out, err := builder.BuildDeclaracion(documentoDeExportacion())
	require.NoError(t, err)

	// se relee el XML generado para verificar la estructura
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("DeclaracionAduanera")
	require.NotNil(t, root)
	assert.Equal(t, "1.0", root.SelectAttrValue("version", ""))

	operacion := root.SelectElement("Operacion")
	require.NotNil(t, operacion)
	assert.Equal(t, "42", operacion.SelectElement("Numero").Text())
	assert.Equal(t, "exportacion", operacion.SelectElement("Tipo").Text())
	assert.Equal(t, "2026-03-15", operacion.SelectElement("Fecha").Text())
	assert.Equal(t, "75.00", operacion.SelectElement("CostoTotal").Text())

	contraparte := root.SelectElement("Contraparte")
	require.NotNil(t, contraparte)
	assert.Equal(t, "cliente", contraparte.SelectAttrValue("rol", ""), "en una exportación la contraparte es el cliente")
	assert.Equal(t, "Frucht Import GmbH", contraparte.SelectElement("Nombre").Text())

	ruta := root.SelectElement("Ruta")
	require.NotNil(t, ruta)
	origen := ruta.SelectElement("Origen")
	require.NotNil(t, origen)
	assert.Equal(t, "EC", origen.SelectElement("Pais").SelectAttrValue("codigoISO", ""))
	assert.Equal(t, "Puerto de Guayaquil", origen.SelectElement("Puerto").Text())
	destino := ruta.SelectElement("Destino")
	require.NotNil(t, destino)
	assert.Equal(t, "Alemania", destino.SelectElement("Pais").Text())
	assert.Nil(t, destino.SelectElement("Puerto"), "sin puerto de destino no se emite el elemento")

	transporte := ruta.SelectElement("Transporte")
	require.NotNil(t, transporte)
	assert.Equal(t, "maritimo", transporte.SelectElement("Tipo").Text())
	assert.Equal(t, "Naviera del Pacífico", transporte.SelectElement("Empresa").Text())
}

func TestDeclaracionBuilder_LineasDeMercancia(t *testing.T) {
	builder := customs.NewDeclaracionBuilder()

	out, err := builder.BuildDeclaracion(documentoDeExportacion())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	lineas := doc.FindElements("//Mercancias/Linea")
	require.Len(t, lineas, 1)

	linea := lineas[0]
	assert.Equal(t, "7", linea.SelectAttrValue("id", ""))
	assert.Equal(t, "Plátano", linea.SelectElement("Producto").Text())

	cantidad := linea.SelectElement("Cantidad")
	require.NotNil(t, cantidad)
	assert.Equal(t, "kg", cantidad.SelectAttrValue("unidad", ""))
	assert.Equal(t, "30", cantidad.Text())

	assert.Equal(t, "2.50", linea.SelectElement("PrecioUnitario").Text())
	assert.Equal(t, "75.00", linea.SelectElement("Subtotal").Text(), "subtotal = cantidad * precio unitario")
}

func TestDeclaracionBuilder_ImportacionUsaProveedor(t *testing.T) {
	builder := customs.NewDeclaracionBuilder()

	doc := documentoDeExportacion()
	doc.Operacion.Tipo = entity.OperacionTipoImportacion
	doc.Cliente = nil
	doc.Proveedor = &entity.Proveedor{ID: 3, Nombre: "AgroAndes S.A."}

	out, err := builder.BuildDeclaracion(doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))

	contraparte := parsed.SelectElement("DeclaracionAduanera").SelectElement("Contraparte")
	require.NotNil(t, contraparte)
	assert.Equal(t, "proveedor", contraparte.SelectAttrValue("rol", ""))
	assert.Equal(t, "AgroAndes S.A.", contraparte.SelectElement("Nombre").Text())
}
