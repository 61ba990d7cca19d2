package entity

// Pais país de origen o destino del comercio. Referenciado por clientes,
// proveedores, puertos y operaciones.
type Pais struct {
	ID        int64
	Nombre    string
	CodigoISO string
}
