package entity

import "github.com/shopspring/decimal"

// DetalleOperacion línea de producto dentro de una operación. Su creación,
// edición y borrado son el único disparador de cambios de stock y de costo total.
type DetalleOperacion struct {
	ID             int64
	ProductoID     int64
	OperacionID    int64
	Cantidad       decimal.Decimal // > 0
	PrecioUnitario decimal.Decimal // > 0
}

// Subtotal cantidad * precio unitario de la línea.
func (d *DetalleOperacion) Subtotal() decimal.Decimal {
	return d.Cantidad.Mul(d.PrecioUnitario)
}
