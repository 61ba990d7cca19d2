package dto

// CreateCategoriaRequest entrada para crear una categoría de producto.
type CreateCategoriaRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
}

// UpdateCategoriaRequest entrada para actualizar una categoría.
type UpdateCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}
