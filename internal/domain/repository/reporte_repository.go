package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ResumenEstado cantidad y costo total de operaciones agrupadas por estado.
type ResumenEstado struct {
	Estado              string
	CantidadOperaciones int
	CostoTotal          decimal.Decimal
}

// ProductoExportado total exportado acumulado de un producto.
type ProductoExportado struct {
	Producto          string
	CantidadExportada decimal.Decimal
}

// IngresoMensual suma de costo_total de las operaciones de un mes.
type IngresoMensual struct {
	Mes      int
	Ingresos decimal.Decimal
}

// ReporteRepository consultas de solo lectura para reportes agregados.
type ReporteRepository interface {
	OperacionesPorEstado(ctx context.Context) ([]ResumenEstado, error)
	TopProductosExportados(ctx context.Context, limit int) ([]ProductoExportado, error)
	IngresosPorMes(ctx context.Context, anio int) ([]IngresoMensual, error)
}
