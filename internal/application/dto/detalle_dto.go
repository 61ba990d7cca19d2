package dto

import "github.com/shopspring/decimal"

// CreateDetalleRequest entrada para crear un detalle de operación.
// Cantidad y PrecioUnitario deben ser > 0 (chequeo en el caso de uso).
type CreateDetalleRequest struct {
	ProductoID     int64           `json:"producto_id" validate:"required"`
	OperacionID    int64           `json:"operacion_id" validate:"required"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// UpdateDetalleRequest solo cantidad y precio_unitario se aplican; el detalle
// no cambia de producto ni de operación. Ambos campos son obligatorios.
type UpdateDetalleRequest struct {
	Cantidad       decimal.Decimal `json:"cantidad" validate:"required"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

// DetalleResponse salida de un detalle.
type DetalleResponse struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"producto_id"`
	OperacionID    int64           `json:"operacion_id"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}
