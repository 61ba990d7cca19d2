package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// PuertoUseCase casos de uso CRUD para puertos. El país dueño es obligatorio
// y debe existir.
type PuertoUseCase struct {
	repo     repository.PuertoRepository
	paisRepo repository.PaisRepository
}

// NewPuertoUseCase construye el caso de uso.
func NewPuertoUseCase(repo repository.PuertoRepository, paisRepo repository.PaisRepository) *PuertoUseCase {
	return &PuertoUseCase{repo: repo, paisRepo: paisRepo}
}

// Create crea un puerto verificando que su país exista.
func (uc *PuertoUseCase) Create(ctx context.Context, in dto.CreatePuertoRequest) (*dto.PuertoResponse, error) {
	if err := uc.verificarPais(ctx, in.PaisID); err != nil {
		return nil, err
	}
	puerto := &entity.Puerto{Nombre: in.Nombre, Tipo: in.Tipo, PaisID: in.PaisID}
	if err := uc.repo.Create(ctx, puerto); err != nil {
		return nil, err
	}
	return toPuertoResponse(puerto), nil
}

// GetByID obtiene un puerto por ID. (nil, nil) si no existe.
func (uc *PuertoUseCase) GetByID(ctx context.Context, id int64) (*dto.PuertoResponse, error) {
	puerto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if puerto == nil {
		return nil, nil
	}
	return toPuertoResponse(puerto), nil
}

// List lista todos los puertos.
func (uc *PuertoUseCase) List(ctx context.Context) ([]dto.PuertoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PuertoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPuertoResponse(p))
	}
	return items, nil
}

// Update actualiza un puerto. (nil, nil) si no existe.
func (uc *PuertoUseCase) Update(ctx context.Context, id int64, in dto.UpdatePuertoRequest) (*dto.PuertoResponse, error) {
	puerto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if puerto == nil {
		return nil, nil
	}
	if in.PaisID != nil {
		if err := uc.verificarPais(ctx, *in.PaisID); err != nil {
			return nil, err
		}
		puerto.PaisID = *in.PaisID
	}
	if in.Nombre != nil {
		puerto.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		puerto.Tipo = in.Tipo
	}
	if err := uc.repo.Update(ctx, puerto); err != nil {
		return nil, err
	}
	return toPuertoResponse(puerto), nil
}

// Delete elimina un puerto por ID.
func (uc *PuertoUseCase) Delete(ctx context.Context, id int64) error {
	puerto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if puerto == nil {
		return fmt.Errorf("puerto no encontrado: %w", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PuertoUseCase) verificarPais(ctx context.Context, paisID int64) error {
	pais, err := uc.paisRepo.GetByID(ctx, paisID)
	if err != nil {
		return err
	}
	if pais == nil {
		return fmt.Errorf("el país con id %d no existe: %w", paisID, domain.ErrNotFound)
	}
	return nil
}

func toPuertoResponse(p *entity.Puerto) *dto.PuertoResponse {
	return &dto.PuertoResponse{ID: p.ID, Nombre: p.Nombre, Tipo: p.Tipo, PaisID: p.PaisID}
}
