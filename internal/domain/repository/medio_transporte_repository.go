package repository

import (
	"context"

	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
)

// MedioTransporteRepository puerto de persistencia para medios de transporte.
type MedioTransporteRepository interface {
	Create(ctx context.Context, m *entity.MedioTransporte) error
	GetByID(ctx context.Context, id int64) (*entity.MedioTransporte, error)
	List(ctx context.Context) ([]*entity.MedioTransporte, error)
	Update(ctx context.Context, m *entity.MedioTransporte) error
	Delete(ctx context.Context, id int64) error
}
