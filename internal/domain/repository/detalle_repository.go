package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// DetalleRepository puerto de persistencia para detalles de operación.
// SumTotalByOperacion devuelve la suma exacta de cantidad*precio_unitario de
// los detalles persistidos de una operación (0 si no hay): es la fuente del
// recálculo de costo_total.
type DetalleRepository interface {
	Create(ctx context.Context, d *entity.DetalleOperacion) error
	GetByID(ctx context.Context, id int64) (*entity.DetalleOperacion, error)
	List(ctx context.Context) ([]*entity.DetalleOperacion, error)
	ListByOperacion(ctx context.Context, operacionID int64) ([]*entity.DetalleOperacion, error)
	Update(ctx context.Context, d *entity.DetalleOperacion) error
	Delete(ctx context.Context, id int64) error
	SumTotalByOperacion(ctx context.Context, operacionID int64) (decimal.Decimal, error)
	CountByOperacion(ctx context.Context, operacionID int64) (int, error)
}
