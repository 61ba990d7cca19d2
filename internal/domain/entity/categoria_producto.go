package entity

// CategoriaProducto agrupa productos (cítricos, hoja verde, tubérculos...).
type CategoriaProducto struct {
	ID          int64
	Nombre      string
	Descripcion *string
}
