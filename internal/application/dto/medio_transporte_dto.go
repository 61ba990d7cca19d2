package dto

// CreateMedioTransporteRequest entrada para crear un medio de transporte.
type CreateMedioTransporteRequest struct {
	Tipo    string  `json:"tipo" validate:"required,min=1,max=100"`
	Empresa *string `json:"empresa"`
}

// UpdateMedioTransporteRequest entrada para actualizar un medio de transporte.
type UpdateMedioTransporteRequest struct {
	Tipo    *string `json:"tipo" validate:"omitempty,min=1,max=100"`
	Empresa *string `json:"empresa"`
}

// MedioTransporteResponse salida de un medio de transporte.
type MedioTransporteResponse struct {
	ID      int64   `json:"id"`
	Tipo    string  `json:"tipo"`
	Empresa *string `json:"empresa"`
}
