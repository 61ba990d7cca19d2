package dto

import "github.com/shopspring/decimal"

// CreateOperacionRequest entrada para crear una operación.
// No existe campo costo_total: el costo es derivado y arranca en 0 siempre,
// cualquier valor que mande el cliente se descarta en el decode.
type CreateOperacionRequest struct {
	Tipo              string  `json:"tipo" validate:"required,oneof=importacion exportacion"`
	Fecha             string  `json:"fecha"` // YYYY-MM-DD; vacío = fecha actual
	Estado            string  `json:"estado"`
	Observaciones     *string `json:"observaciones"`
	ClienteID         *int64  `json:"cliente_id"`
	ProveedorID       *int64  `json:"proveedor_id"`
	PaisOrigenID      *int64  `json:"pais_origen_id"`
	PaisDestinoID     *int64  `json:"pais_destino_id"`
	PuertoOrigenID    *int64  `json:"puerto_origen_id"`
	PuertoDestinoID   *int64  `json:"puerto_destino_id"`
	MedioTransporteID *int64  `json:"medio_transporte_id"`
}

// UpdateOperacionRequest entrada para actualizar una operación. Solo campos
// presentes se aplican; la operación resultante se vuelve a validar completa.
type UpdateOperacionRequest struct {
	Tipo              *string `json:"tipo" validate:"omitempty,oneof=importacion exportacion"`
	Fecha             *string `json:"fecha"`
	Estado            *string `json:"estado"`
	Observaciones     *string `json:"observaciones"`
	ClienteID         *int64  `json:"cliente_id"`
	ProveedorID       *int64  `json:"proveedor_id"`
	PaisOrigenID      *int64  `json:"pais_origen_id"`
	PaisDestinoID     *int64  `json:"pais_destino_id"`
	PuertoOrigenID    *int64  `json:"puerto_origen_id"`
	PuertoDestinoID   *int64  `json:"puerto_destino_id"`
	MedioTransporteID *int64  `json:"medio_transporte_id"`
}

// OperacionResponse salida de una operación.
type OperacionResponse struct {
	ID                int64           `json:"id"`
	Tipo              string          `json:"tipo"`
	Fecha             string          `json:"fecha"`
	Estado            string          `json:"estado"`
	CostoTotal        decimal.Decimal `json:"costo_total"`
	Observaciones     *string         `json:"observaciones"`
	ClienteID         *int64          `json:"cliente_id"`
	ProveedorID       *int64          `json:"proveedor_id"`
	PaisOrigenID      *int64          `json:"pais_origen_id"`
	PaisDestinoID     *int64          `json:"pais_destino_id"`
	PuertoOrigenID    *int64          `json:"puerto_origen_id"`
	PuertoDestinoID   *int64          `json:"puerto_destino_id"`
	MedioTransporteID *int64          `json:"medio_transporte_id"`
}
