package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo     repository.ProveedorRepository
	paisRepo repository.PaisRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository, paisRepo repository.PaisRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo, paisRepo: paisRepo}
}

// Create crea un proveedor. Si trae país, este debe existir.
func (uc *ProveedorUseCase) Create(ctx context.Context, in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.PaisID != nil {
		pais, err := uc.paisRepo.GetByID(ctx, *in.PaisID)
		if err != nil {
			return nil, err
		}
		if pais == nil {
			return nil, fmt.Errorf("el país con id %d no existe: %w", *in.PaisID, domain.ErrNotFound)
		}
	}
	proveedor := &entity.Proveedor{
		Nombre:   in.Nombre,
		Tipo:     in.Tipo,
		Email:    in.Email,
		Telefono: in.Telefono,
		PaisID:   in.PaisID,
	}
	if err := uc.repo.Create(ctx, proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// GetByID obtiene un proveedor por ID. (nil, nil) si no existe.
func (uc *ProveedorUseCase) GetByID(ctx context.Context, id int64) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, nil
	}
	return toProveedorResponse(proveedor), nil
}

// List lista todos los proveedores.
func (uc *ProveedorUseCase) List(ctx context.Context) ([]dto.ProveedorResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProveedorResponse(p))
	}
	return items, nil
}

// Update actualiza un proveedor. (nil, nil) si no existe.
func (uc *ProveedorUseCase) Update(ctx context.Context, id int64, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, nil
	}
	if in.PaisID != nil {
		pais, err := uc.paisRepo.GetByID(ctx, *in.PaisID)
		if err != nil {
			return nil, err
		}
		if pais == nil {
			return nil, fmt.Errorf("el país con id %d no existe: %w", *in.PaisID, domain.ErrNotFound)
		}
		proveedor.PaisID = in.PaisID
	}
	if in.Nombre != nil {
		proveedor.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		proveedor.Tipo = in.Tipo
	}
	if in.Email != nil {
		proveedor.Email = in.Email
	}
	if in.Telefono != nil {
		proveedor.Telefono = in.Telefono
	}
	if err := uc.repo.Update(ctx, proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// Delete elimina un proveedor por ID.
func (uc *ProveedorUseCase) Delete(ctx context.Context, id int64) error {
	proveedor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return fmt.Errorf("proveedor no encontrado: %w", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Tipo:     p.Tipo,
		Email:    p.Email,
		Telefono: p.Telefono,
		PaisID:   p.PaisID,
	}
}
