package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// OperacionUseCase ciclo de vida de las operaciones de comercio exterior.
// Toda escritura pasa antes por el OperacionValidator; costo_total nunca se
// acepta del cliente (arranca en 0 y solo lo escribe el ledger de detalles).
type OperacionUseCase struct {
	operacionRepo repository.OperacionRepository
	detalleRepo   repository.DetalleRepository
	validator     *OperacionValidator
	now           func() time.Time
}

// NewOperacionUseCase construye el caso de uso con reloj de sistema.
func NewOperacionUseCase(
	operacionRepo repository.OperacionRepository,
	detalleRepo repository.DetalleRepository,
	validator *OperacionValidator,
) *OperacionUseCase {
	return &OperacionUseCase{
		operacionRepo: operacionRepo,
		detalleRepo:   detalleRepo,
		validator:     validator,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *OperacionUseCase) WithClock(now func() time.Time) *OperacionUseCase {
	uc.now = now
	return uc
}

// Create valida la topología relacional y persiste la operación con
// costo_total = 0, ignorando cualquier costo que venga del cliente.
func (uc *OperacionUseCase) Create(ctx context.Context, in dto.CreateOperacionRequest) (*dto.OperacionResponse, error) {
	fecha, err := uc.parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.OperacionEstadoPendiente
	}

	if err := uc.validator.Validate(ctx, OperacionCandidata{
		Tipo:            in.Tipo,
		ClienteID:       in.ClienteID,
		ProveedorID:     in.ProveedorID,
		PaisOrigenID:    in.PaisOrigenID,
		PaisDestinoID:   in.PaisDestinoID,
		PuertoOrigenID:  in.PuertoOrigenID,
		PuertoDestinoID: in.PuertoDestinoID,
	}); err != nil {
		return nil, err
	}

	op := &entity.Operacion{
		Tipo:              in.Tipo,
		Fecha:             fecha,
		Estado:            estado,
		CostoTotal:        decimal.Zero, // se actualizará con los detalles
		Observaciones:     in.Observaciones,
		ClienteID:         in.ClienteID,
		ProveedorID:       in.ProveedorID,
		PaisOrigenID:      in.PaisOrigenID,
		PaisDestinoID:     in.PaisDestinoID,
		PuertoOrigenID:    in.PuertoOrigenID,
		PuertoDestinoID:   in.PuertoDestinoID,
		MedioTransporteID: in.MedioTransporteID,
	}
	if err := uc.operacionRepo.Create(ctx, op); err != nil {
		return nil, err
	}
	return toOperacionResponse(op), nil
}

// GetByID obtiene una operación por ID. (nil, nil) si no existe.
func (uc *OperacionUseCase) GetByID(ctx context.Context, id int64) (*dto.OperacionResponse, error) {
	op, err := uc.operacionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}
	return toOperacionResponse(op), nil
}

// List lista todas las operaciones.
func (uc *OperacionUseCase) List(ctx context.Context) ([]dto.OperacionResponse, error) {
	list, err := uc.operacionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperacionResponse, 0, len(list))
	for _, op := range list {
		items = append(items, *toOperacionResponse(op))
	}
	return items, nil
}

// Update aplica los campos presentes sobre la operación y re-valida el
// resultado. El tipo es inmutable mientras existan detalles; costo_total no es
// actualizable por esta vía.
func (uc *OperacionUseCase) Update(ctx context.Context, id int64, in dto.UpdateOperacionRequest) (*dto.OperacionResponse, error) {
	op, err := uc.operacionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, fmt.Errorf("la operación con id %d no fue encontrada: %w", id, domain.ErrNotFound)
	}

	if in.Tipo != nil && *in.Tipo != op.Tipo {
		count, err := uc.detalleRepo.CountByOperacion(ctx, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrTipoConDetalles
		}
		op.Tipo = *in.Tipo
	}
	if in.Fecha != nil {
		fecha, err := uc.parseFecha(*in.Fecha)
		if err != nil {
			return nil, err
		}
		op.Fecha = fecha
	}
	if in.Estado != nil {
		op.Estado = *in.Estado
	}
	if in.Observaciones != nil {
		op.Observaciones = in.Observaciones
	}
	if in.ClienteID != nil {
		op.ClienteID = in.ClienteID
	}
	if in.ProveedorID != nil {
		op.ProveedorID = in.ProveedorID
	}
	if in.PaisOrigenID != nil {
		op.PaisOrigenID = in.PaisOrigenID
	}
	if in.PaisDestinoID != nil {
		op.PaisDestinoID = in.PaisDestinoID
	}
	if in.PuertoOrigenID != nil {
		op.PuertoOrigenID = in.PuertoOrigenID
	}
	if in.PuertoDestinoID != nil {
		op.PuertoDestinoID = in.PuertoDestinoID
	}
	if in.MedioTransporteID != nil {
		op.MedioTransporteID = in.MedioTransporteID
	}

	// Se valida la operación resultante, no solo el payload
	if err := uc.validator.Validate(ctx, OperacionCandidata{
		Tipo:            op.Tipo,
		ClienteID:       op.ClienteID,
		ProveedorID:     op.ProveedorID,
		PaisOrigenID:    op.PaisOrigenID,
		PaisDestinoID:   op.PaisDestinoID,
		PuertoOrigenID:  op.PuertoOrigenID,
		PuertoDestinoID: op.PuertoDestinoID,
	}); err != nil {
		return nil, err
	}

	if err := uc.operacionRepo.Update(ctx, op); err != nil {
		return nil, err
	}
	return toOperacionResponse(op), nil
}

// Delete elimina una operación sin detalles; con detalles se rechaza.
func (uc *OperacionUseCase) Delete(ctx context.Context, id int64) error {
	op, err := uc.operacionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if op == nil {
		return fmt.Errorf("la operación con id %d no existe: %w", id, domain.ErrNotFound)
	}
	count, err := uc.detalleRepo.CountByOperacion(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("elimine primero los detalles: %w", domain.ErrOperacionConDetalles)
	}
	return uc.operacionRepo.Delete(ctx, id)
}

// parseFecha convierte YYYY-MM-DD; vacío usa el reloj inyectado.
func (uc *OperacionUseCase) parseFecha(s string) (time.Time, error) {
	if s == "" {
		return uc.now(), nil
	}
	fecha, err := time.Parse(dto.FechaLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q no tiene formato %s: %w", s, dto.FechaLayout, domain.ErrInvalidInput)
	}
	return fecha, nil
}

func toOperacionResponse(op *entity.Operacion) *dto.OperacionResponse {
	if op == nil {
		return nil
	}
	return &dto.OperacionResponse{
		ID:                op.ID,
		Tipo:              op.Tipo,
		Fecha:             op.Fecha.Format(dto.FechaLayout),
		Estado:            op.Estado,
		CostoTotal:        op.CostoTotal,
		Observaciones:     op.Observaciones,
		ClienteID:         op.ClienteID,
		ProveedorID:       op.ProveedorID,
		PaisOrigenID:      op.PaisOrigenID,
		PaisDestinoID:     op.PaisDestinoID,
		PuertoOrigenID:    op.PuertoOrigenID,
		PuertoDestinoID:   op.PuertoDestinoID,
		MedioTransporteID: op.MedioTransporteID,
	}
}
