package repository

import (
	"context"

	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// CategoriaRepository puerto de persistencia para categorías de producto.
type CategoriaRepository interface {
	Create(ctx context.Context, c *entity.CategoriaProducto) error
	GetByID(ctx context.Context, id int64) (*entity.CategoriaProducto, error)
	List(ctx context.Context) ([]*entity.CategoriaProducto, error)
	Update(ctx context.Context, c *entity.CategoriaProducto) error
	Delete(ctx context.Context, id int64) error
}
