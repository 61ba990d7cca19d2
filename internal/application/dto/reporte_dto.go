package dto

import "github.com/shopspring/decimal"

// ResumenEstadoDTO fila del reporte de operaciones por estado.
type ResumenEstadoDTO struct {
	Estado              string          `json:"estado"`
	CantidadOperaciones int             `json:"cantidad_operaciones"`
	CostoTotal          decimal.Decimal `json:"costo_total"`
}

// TopProductoDTO fila del reporte de productos más exportados.
type TopProductoDTO struct {
	Producto          string          `json:"producto"`
	CantidadExportada decimal.Decimal `json:"cantidad_exportada"`
}

// IngresoMensualDTO fila del reporte de ingresos por mes.
type IngresoMensualDTO struct {
	Mes      int             `json:"mes"`
	Ingresos decimal.Decimal `json:"ingresos"`
}
