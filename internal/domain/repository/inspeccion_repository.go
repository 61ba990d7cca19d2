package repository

import (
	"context"

	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// InspeccionRepository puerto de persistencia para inspecciones de calidad.
type InspeccionRepository interface {
	Create(ctx context.Context, i *entity.InspeccionCalidad) error
	GetByID(ctx context.Context, id int64) (*entity.InspeccionCalidad, error)
	List(ctx context.Context) ([]*entity.InspeccionCalidad, error)
	Update(ctx context.Context, i *entity.InspeccionCalidad) error
	Delete(ctx context.Context, id int64) error
}
