package dto

// CreateProveedorRequest entrada para crear un proveedor.
type CreateProveedorRequest struct {
	Nombre   string  `json:"nombre" validate:"required,min=1,max=200"`
	Tipo     *string `json:"tipo"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
	PaisID   *int64  `json:"pais_id"`
}

// UpdateProveedorRequest entrada para actualizar un proveedor.
type UpdateProveedorRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Tipo     *string `json:"tipo"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
	PaisID   *int64  `json:"pais_id"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"nombre"`
	Tipo     *string `json:"tipo"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
	PaisID   *int64  `json:"pais_id"`
}
