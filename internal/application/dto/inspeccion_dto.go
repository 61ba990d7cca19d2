package dto

// CreateInspeccionRequest entrada para crear una inspección de calidad.
type CreateInspeccionRequest struct {
	Fecha         string  `json:"fecha"` // YYYY-MM-DD; vacío = fecha actual
	Resultado     string  `json:"resultado" validate:"required,min=1,max=100"`
	Observaciones *string `json:"observaciones"`
	OperacionID   int64   `json:"operacion_id" validate:"required"`
	ProductoID    *int64  `json:"producto_id"`
}

// UpdateInspeccionRequest entrada para actualizar una inspección.
type UpdateInspeccionRequest struct {
	Fecha         *string `json:"fecha"`
	Resultado     *string `json:"resultado" validate:"omitempty,min=1,max=100"`
	Observaciones *string `json:"observaciones"`
	ProductoID    *int64  `json:"producto_id"`
}

// InspeccionResponse salida de una inspección.
type InspeccionResponse struct {
	ID            int64   `json:"id"`
	Fecha         string  `json:"fecha"`
	Resultado     string  `json:"resultado"`
	Observaciones *string `json:"observaciones"`
	OperacionID   int64   `json:"operacion_id"`
	ProductoID    *int64  `json:"producto_id"`
}
