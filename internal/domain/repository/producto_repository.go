package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para productos.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE): debe usarse dentro de una
// transacción, es la base de la serialización de ajustes de stock.
// UpdateStock es la única vía de escritura de stock_disponible.
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Producto, error)
	List(ctx context.Context) ([]*entity.Producto, error)
	Update(ctx context.Context, p *entity.Producto) error
	UpdateStock(ctx context.Context, id int64, stock decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}
