package repository

import (
	"context"

	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// PaisRepository puerto de persistencia para países.
// GetByID devuelve (nil, nil) cuando el registro no existe.
type PaisRepository interface {
	Create(ctx context.Context, p *entity.Pais) error
	GetByID(ctx context.Context, id int64) (*entity.Pais, error)
	List(ctx context.Context) ([]*entity.Pais, error)
	Update(ctx context.Context, p *entity.Pais) error
	Delete(ctx context.Context, id int64) error
}
