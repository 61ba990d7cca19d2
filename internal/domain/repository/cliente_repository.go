package repository

import (
	"context"

	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para clientes.
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	List(ctx context.Context) ([]*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, id int64) error
}
