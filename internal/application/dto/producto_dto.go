package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest entrada para crear un producto.
// PrecioReferencia debe ser > 0 y StockDisponible >= 0 (chequeo en el caso de
// uso: validator no opera sobre decimal.Decimal).
type CreateProductoRequest struct {
	Nombre           string          `json:"nombre" validate:"required,min=1,max=200"`
	Tipo             string          `json:"tipo" validate:"required,oneof=fruta verdura"`
	UnidadMedida     string          `json:"unidad_medida"`
	PrecioReferencia decimal.Decimal `json:"precio_referencia"`
	StockDisponible  decimal.Decimal `json:"stock_disponible"`
	CategoriaID      *int64          `json:"categoria_id"`
}

// UpdateProductoRequest entrada para actualizar un producto. No incluye
// StockDisponible: el stock solo lo mueve el ledger de detalles.
type UpdateProductoRequest struct {
	Nombre           *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Tipo             *string          `json:"tipo" validate:"omitempty,oneof=fruta verdura"`
	UnidadMedida     *string          `json:"unidad_medida"`
	PrecioReferencia *decimal.Decimal `json:"precio_referencia"`
	CategoriaID      *int64           `json:"categoria_id"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID               int64           `json:"id"`
	Nombre           string          `json:"nombre"`
	Tipo             string          `json:"tipo"`
	UnidadMedida     string          `json:"unidad_medida"`
	PrecioReferencia decimal.Decimal `json:"precio_referencia"`
	StockDisponible  decimal.Decimal `json:"stock_disponible"`
	CategoriaID      *int64          `json:"categoria_id"`
}
