package dto

// FechaLayout formato de fecha aceptado y emitido por la API (ISO, solo día).
const FechaLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple (borrados, acciones sin cuerpo).
type MessageResponse struct {
	Message string `json:"message"`
}
