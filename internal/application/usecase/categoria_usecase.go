package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías de producto.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoriaUseCase) Create(ctx context.Context, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria := &entity.CategoriaProducto{Nombre: in.Nombre, Descripcion: in.Descripcion}
	if err := uc.repo.Create(ctx, categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (uc *CategoriaUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	return toCategoriaResponse(categoria), nil
}

// List lista todas las categorías.
func (uc *CategoriaUseCase) List(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Update actualiza una categoría. (nil, nil) si no existe.
func (uc *CategoriaUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		categoria.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		categoria.Descripcion = in.Descripcion
	}
	if err := uc.repo.Update(ctx, categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Delete elimina una categoría por ID.
func (uc *CategoriaUseCase) Delete(ctx context.Context, id int64) error {
	categoria, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return fmt.Errorf("categoría no encontrada: %w", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func toCategoriaResponse(c *entity.CategoriaProducto) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion}
}
