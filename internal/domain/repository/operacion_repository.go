package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// OperacionRepository puerto de persistencia para operaciones.
// UpdateCostoTotal es la única vía de escritura de costo_total: Update no toca
// ese campo.
type OperacionRepository interface {
	Create(ctx context.Context, o *entity.Operacion) error
	GetByID(ctx context.Context, id int64) (*entity.Operacion, error)
	List(ctx context.Context) ([]*entity.Operacion, error)
	Update(ctx context.Context, o *entity.Operacion) error
	UpdateCostoTotal(ctx context.Context, id int64, total decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}
