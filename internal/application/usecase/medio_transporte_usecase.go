package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// MedioTransporteUseCase casos de uso CRUD para medios de transporte.
type MedioTransporteUseCase struct {
	repo repository.MedioTransporteRepository
}

// NewMedioTransporteUseCase construye el caso de uso.
func NewMedioTransporteUseCase(repo repository.MedioTransporteRepository) *MedioTransporteUseCase {
	return &MedioTransporteUseCase{repo: repo}
}

// Create crea un medio de transporte.
func (uc *MedioTransporteUseCase) Create(ctx context.Context, in dto.CreateMedioTransporteRequest) (*dto.MedioTransporteResponse, error) {
	medio := &entity.MedioTransporte{Tipo: in.Tipo, Empresa: in.Empresa}
	if err := uc.repo.Create(ctx, medio); err != nil {
		return nil, err
	}
	return toMedioTransporteResponse(medio), nil
}

// GetByID obtiene un medio de transporte por ID. (nil, nil) si no existe.
func (uc *MedioTransporteUseCase) GetByID(ctx context.Context, id int64) (*dto.MedioTransporteResponse, error) {
	medio, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medio == nil {
		return nil, nil
	}
	return toMedioTransporteResponse(medio), nil
}

// List lista todos los medios de transporte.
func (uc *MedioTransporteUseCase) List(ctx context.Context) ([]dto.MedioTransporteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedioTransporteResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMedioTransporteResponse(m))
	}
	return items, nil
}

// Update actualiza un medio de transporte. (nil, nil) si no existe.
func (uc *MedioTransporteUseCase) Update(ctx context.Context, id int64, in dto.UpdateMedioTransporteRequest) (*dto.MedioTransporteResponse, error) {
	medio, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medio == nil {
		return nil, nil
	}
	if in.Tipo != nil {
		medio.Tipo = *in.Tipo
	}
	if in.Empresa != nil {
		medio.Empresa = in.Empresa
	}
	if err := uc.repo.Update(ctx, medio); err != nil {
		return nil, err
	}
	return toMedioTransporteResponse(medio), nil
}

// Delete elimina un medio de transporte por ID.
func (uc *MedioTransporteUseCase) Delete(ctx context.Context, id int64) error {
	medio, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if medio == nil {
		return fmt.Errorf("medio de transporte no encontrado: %w", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func toMedioTransporteResponse(m *entity.MedioTransporte) *dto.MedioTransporteResponse {
	return &dto.MedioTransporteResponse{ID: m.ID, Tipo: m.Tipo, Empresa: m.Empresa}
}
