package entity

// Cliente contraparte de las operaciones de exportación.
type Cliente struct {
	ID       int64
	Nombre   string
	Tipo     *string
	Email    *string
	Telefono *string
	PaisID   *int64
}
