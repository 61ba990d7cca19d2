package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación. Inmutables una vez que la operación tiene detalles.
const (
	OperacionTipoImportacion = "importacion"
	OperacionTipoExportacion = "exportacion"
)

// OperacionEstadoPendiente estado inicial de toda operación.
const OperacionEstadoPendiente = "pendiente"

// Operacion una transacción de comercio exterior (importación o exportación).
// CostoTotal es derivado: siempre igual a la suma de cantidad*precio_unitario
// de sus detalles, recalculado por el ledger; el cliente HTTP nunca lo fija.
type Operacion struct {
	ID                int64
	Tipo              string // importacion / exportacion
	Fecha             time.Time
	Estado            string
	CostoTotal        decimal.Decimal
	Observaciones     *string
	ClienteID         *int64
	ProveedorID       *int64
	PaisOrigenID      *int64
	PaisDestinoID     *int64
	PuertoOrigenID    *int64
	PuertoDestinoID   *int64
	MedioTransporteID *int64
}

// EsExportacion indica si la operación saca mercancía del stock.
func (o *Operacion) EsExportacion() bool { return o.Tipo == OperacionTipoExportacion }

// EsImportacion indica si la operación ingresa mercancía al stock.
func (o *Operacion) EsImportacion() bool { return o.Tipo == OperacionTipoImportacion }
