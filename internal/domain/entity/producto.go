package entity

import "github.com/shopspring/decimal"

// Tipos de producto admitidos.
const (
	ProductoTipoFruta   = "fruta"
	ProductoTipoVerdura = "verdura"
)

// Producto fruta o verdura comercializada. StockDisponible solo lo modifica el
// ledger de detalles (nunca un update genérico) y no puede quedar negativo.
type Producto struct {
	ID               int64
	Nombre           string
	Tipo             string // fruta / verdura
	UnidadMedida     string // kg por defecto
	PrecioReferencia decimal.Decimal
	StockDisponible  decimal.Decimal
	CategoriaID      *int64
}
