package dto

// CreateClienteRequest entrada para crear un cliente.
type CreateClienteRequest struct {
	Nombre   string  `json:"nombre" validate:"required,min=1,max=200"`
	Tipo     *string `json:"tipo"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
	PaisID   *int64  `json:"pais_id"`
}

// UpdateClienteRequest entrada para actualizar un cliente.
type UpdateClienteRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Tipo     *string `json:"tipo"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
	PaisID   *int64  `json:"pais_id"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"nombre"`
	Tipo     *string `json:"tipo"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
	PaisID   *int64  `json:"pais_id"`
}
