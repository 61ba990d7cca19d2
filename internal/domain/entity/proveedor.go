package entity

// Proveedor contraparte de las operaciones de importación.
type Proveedor struct {
	ID       int64
	Nombre   string
	Tipo     *string
	Email    *string
	Telefono *string
	PaisID   *int64
}
