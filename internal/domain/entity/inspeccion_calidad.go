package entity

import "time"

// InspeccionCalidad control de calidad asociado a una operación (y
// opcionalmente a un producto). Sin efectos sobre stock ni costos.
type InspeccionCalidad struct {
	ID            int64
	Fecha         time.Time
	Resultado     string
	Observaciones *string
	OperacionID   int64
	ProductoID    *int64
}
