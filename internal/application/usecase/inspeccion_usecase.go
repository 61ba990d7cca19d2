package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// InspeccionUseCase casos de uso CRUD para inspecciones de calidad. Las
// inspecciones nunca afectan stock ni costos.
type InspeccionUseCase struct {
	repo          repository.InspeccionRepository
	operacionRepo repository.OperacionRepository
	productoRepo  repository.ProductoRepository
	now           func() time.Time
}

// NewInspeccionUseCase construye el caso de uso con reloj de sistema.
func NewInspeccionUseCase(
	repo repository.InspeccionRepository,
	operacionRepo repository.OperacionRepository,
	productoRepo repository.ProductoRepository,
) *InspeccionUseCase {
	return &InspeccionUseCase{
		repo:          repo,
		operacionRepo: operacionRepo,
		productoRepo:  productoRepo,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *InspeccionUseCase) WithClock(now func() time.Time) *InspeccionUseCase {
	uc.now = now
	return uc
}

// Create crea una inspección; la operación referida debe existir y, si viene
// producto, también.
func (uc *InspeccionUseCase) Create(ctx context.Context, in dto.CreateInspeccionRequest) (*dto.InspeccionResponse, error) {
	fecha, err := uc.parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	if err := uc.verificarOperacion(ctx, in.OperacionID); err != nil {
		return nil, err
	}
	if err := uc.verificarProducto(ctx, in.ProductoID); err != nil {
		return nil, err
	}
	inspeccion := &entity.InspeccionCalidad{
		Fecha:         fecha,
		Resultado:     in.Resultado,
		Observaciones: in.Observaciones,
		OperacionID:   in.OperacionID,
		ProductoID:    in.ProductoID,
	}
	if err := uc.repo.Create(ctx, inspeccion); err != nil {
		return nil, err
	}
	return toInspeccionResponse(inspeccion), nil
}

// GetByID obtiene una inspección por ID. (nil, nil) si no existe.
func (uc *InspeccionUseCase) GetByID(ctx context.Context, id int64) (*dto.InspeccionResponse, error) {
	inspeccion, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inspeccion == nil {
		return nil, nil
	}
	return toInspeccionResponse(inspeccion), nil
}

// List lista todas las inspecciones.
func (uc *InspeccionUseCase) List(ctx context.Context) ([]dto.InspeccionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InspeccionResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInspeccionResponse(i))
	}
	return items, nil
}

// Update actualiza una inspección. (nil, nil) si no existe. La operación
// asociada no es reasignable.
func (uc *InspeccionUseCase) Update(ctx context.Context, id int64, in dto.UpdateInspeccionRequest) (*dto.InspeccionResponse, error) {
	inspeccion, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inspeccion == nil {
		return nil, nil
	}
	if in.Fecha != nil {
		fecha, err := uc.parseFecha(*in.Fecha)
		if err != nil {
			return nil, err
		}
		inspeccion.Fecha = fecha
	}
	if in.ProductoID != nil {
		if err := uc.verificarProducto(ctx, in.ProductoID); err != nil {
			return nil, err
		}
		inspeccion.ProductoID = in.ProductoID
	}
	if in.Resultado != nil {
		inspeccion.Resultado = *in.Resultado
	}
	if in.Observaciones != nil {
		inspeccion.Observaciones = in.Observaciones
	}
	if err := uc.repo.Update(ctx, inspeccion); err != nil {
		return nil, err
	}
	return toInspeccionResponse(inspeccion), nil
}

// Delete elimina una inspección por ID.
func (uc *InspeccionUseCase) Delete(ctx context.Context, id int64) error {
	inspeccion, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inspeccion == nil {
		return fmt.Errorf("inspección no encontrada: %w", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *InspeccionUseCase) verificarOperacion(ctx context.Context, operacionID int64) error {
	op, err := uc.operacionRepo.GetByID(ctx, operacionID)
	if err != nil {
		return err
	}
	if op == nil {
		return fmt.Errorf("la operación con id %d no existe: %w", operacionID, domain.ErrNotFound)
	}
	return nil
}

func (uc *InspeccionUseCase) verificarProducto(ctx context.Context, productoID *int64) error {
	if productoID == nil {
		return nil
	}
	producto, err := uc.productoRepo.GetByID(ctx, *productoID)
	if err != nil {
		return err
	}
	if producto == nil {
		return fmt.Errorf("el producto con id %d no existe: %w", *productoID, domain.ErrNotFound)
	}
	return nil
}

func (uc *InspeccionUseCase) parseFecha(s string) (time.Time, error) {
	if s == "" {
		return uc.now(), nil
	}
	fecha, err := time.Parse(dto.FechaLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q no tiene formato %s: %w", s, dto.FechaLayout, domain.ErrInvalidInput)
	}
	return fecha, nil
}

func toInspeccionResponse(i *entity.InspeccionCalidad) *dto.InspeccionResponse {
	return &dto.InspeccionResponse{
		ID:            i.ID,
		Fecha:         i.Fecha.Format(dto.FechaLayout),
		Resultado:     i.Resultado,
		Observaciones: i.Observaciones,
		OperacionID:   i.OperacionID,
		ProductoID:    i.ProductoID,
	}
}
