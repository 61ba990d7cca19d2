package repository

import (
	"context"

	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// PuertoRepository puerto de persistencia para puertos/terminales.
type PuertoRepository interface {
	Create(ctx context.Context, p *entity.Puerto) error
	GetByID(ctx context.Context, id int64) (*entity.Puerto, error)
	List(ctx context.Context) ([]*entity.Puerto, error)
	Update(ctx context.Context, p *entity.Puerto) error
	Delete(ctx context.Context, id int64) error
}
