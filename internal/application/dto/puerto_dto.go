package dto

// CreatePuertoRequest entrada para crear un puerto. El país es obligatorio.
type CreatePuertoRequest struct {
	Nombre string  `json:"nombre" validate:"required,min=1,max=200"`
	Tipo   *string `json:"tipo"`
	PaisID int64   `json:"pais_id" validate:"required"`
}

// UpdatePuertoRequest entrada para actualizar un puerto.
type UpdatePuertoRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Tipo   *string `json:"tipo"`
	PaisID *int64  `json:"pais_id"`
}

// PuertoResponse salida de un puerto.
type PuertoResponse struct {
	ID     int64   `json:"id"`
	Nombre string  `json:"nombre"`
	Tipo   *string `json:"tipo"`
	PaisID int64   `json:"pais_id"`
}
