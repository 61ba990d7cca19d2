package dto

// CreatePaisRequest entrada para crear un país.
type CreatePaisRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=100"`
	CodigoISO string `json:"codigo_iso" validate:"required,min=2,max=3"`
}

// UpdatePaisRequest entrada para actualizar un país (campos opcionales).
type UpdatePaisRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	CodigoISO *string `json:"codigo_iso" validate:"omitempty,min=2,max=3"`
}

// PaisResponse salida de un país.
type PaisResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	CodigoISO string `json:"codigo_iso"`
}
