package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// PaisUseCase casos de uso CRUD para países.
type PaisUseCase struct {
	repo repository.PaisRepository
}

// NewPaisUseCase construye el caso de uso.
func NewPaisUseCase(repo repository.PaisRepository) *PaisUseCase {
	return &PaisUseCase{repo: repo}
}

// Create crea un país.
func (uc *PaisUseCase) Create(ctx context.Context, in dto.CreatePaisRequest) (*dto.PaisResponse, error) {
	pais := &entity.Pais{Nombre: in.Nombre, CodigoISO: in.CodigoISO}
	if err := uc.repo.Create(ctx, pais); err != nil {
		return nil, err
	}
	return toPaisResponse(pais), nil
}

// GetByID obtiene un país por ID. (nil, nil) si no existe.
func (uc *PaisUseCase) GetByID(ctx context.Context, id int64) (*dto.PaisResponse, error) {
	pais, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pais == nil {
		return nil, nil
	}
	return toPaisResponse(pais), nil
}

// List lista todos los países.
func (uc *PaisUseCase) List(ctx context.Context) ([]dto.PaisResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaisResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaisResponse(p))
	}
	return items, nil
}

// Update actualiza un país. (nil, nil) si no existe.
func (uc *PaisUseCase) Update(ctx context.Context, id int64, in dto.UpdatePaisRequest) (*dto.PaisResponse, error) {
	pais, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pais == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		pais.Nombre = *in.Nombre
	}
	if in.CodigoISO != nil {
		pais.CodigoISO = *in.CodigoISO
	}
	if err := uc.repo.Update(ctx, pais); err != nil {
		return nil, err
	}
	return toPaisResponse(pais), nil
}

// Delete elimina un país por ID.
func (uc *PaisUseCase) Delete(ctx context.Context, id int64) error {
	pais, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pais == nil {
		return fmt.Errorf("país no encontrado: %w", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func toPaisResponse(p *entity.Pais) *dto.PaisResponse {
	return &dto.PaisResponse{ID: p.ID, Nombre: p.Nombre, CodigoISO: p.CodigoISO}
}
