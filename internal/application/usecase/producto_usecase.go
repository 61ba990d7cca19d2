package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. El stock disponible no se
// toca por aquí: solo lo mueven los detalles de operación.
type ProductoUseCase struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, categoriaRepo: categoriaRepo}
}

// Create crea un producto. El precio de referencia debe ser positivo y el
// stock inicial no puede ser negativo.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if !in.PrecioReferencia.IsPositive() {
		return nil, fmt.Errorf("el precio de referencia debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	if in.StockDisponible.IsNegative() {
		return nil, fmt.Errorf("el stock disponible no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if err := uc.verificarCategoria(ctx, in.CategoriaID); err != nil {
		return nil, err
	}
	unidad := in.UnidadMedida
	if unidad == "" {
		unidad = "kg"
	}
	producto := &entity.Producto{
		Nombre:           in.Nombre,
		Tipo:             in.Tipo,
		UnidadMedida:     unidad,
		PrecioReferencia: in.PrecioReferencia,
		StockDisponible:  in.StockDisponible,
		CategoriaID:      in.CategoriaID,
	}
	if err := uc.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// List lista productos; q filtra por nombre sin distinguir acentos.
func (uc *ProductoUseCase) List(ctx context.Context, q string) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		if coincide(p.Nombre, q) {
			items = append(items, *toProductoResponse(p))
		}
	}
	return items, nil
}

// Update actualiza un producto. (nil, nil) si no existe. El stock disponible
// nunca se modifica por esta vía.
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.PrecioReferencia != nil {
		if !in.PrecioReferencia.IsPositive() {
			return nil, fmt.Errorf("el precio de referencia debe ser mayor que cero: %w", domain.ErrInvalidInput)
		}
		producto.PrecioReferencia = *in.PrecioReferencia
	}
	if in.CategoriaID != nil {
		if err := uc.verificarCategoria(ctx, in.CategoriaID); err != nil {
			return nil, err
		}
		producto.CategoriaID = in.CategoriaID
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		producto.Tipo = *in.Tipo
	}
	if in.UnidadMedida != nil {
		producto.UnidadMedida = *in.UnidadMedida
	}
	if err := uc.repo.Update(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Delete elimina un producto por ID.
func (uc *ProductoUseCase) Delete(ctx context.Context, id int64) error {
	producto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if producto == nil {
		return fmt.Errorf("producto no encontrado: %w", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductoUseCase) verificarCategoria(ctx context.Context, categoriaID *int64) error {
	if categoriaID == nil {
		return nil
	}
	categoria, err := uc.categoriaRepo.GetByID(ctx, *categoriaID)
	if err != nil {
		return err
	}
	if categoria == nil {
		return fmt.Errorf("la categoría con id %d no existe: %w", *categoriaID, domain.ErrNotFound)
	}
	return nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Tipo:             p.Tipo,
		UnidadMedida:     p.UnidadMedida,
		PrecioReferencia: p.PrecioReferencia,
		StockDisponible:  p.StockDisponible,
		CategoriaID:      p.CategoriaID,
	}
}
