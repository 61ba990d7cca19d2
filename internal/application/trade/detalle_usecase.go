package trade

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// DetalleUseCase ledger de stock y costo: es el único componente que escribe
// stock_disponible y costo_total. Cada operación corre dentro de una
// transacción (TxRunner) con la fila del producto bloqueada (SELECT FOR
// UPDATE); si una validación falla no queda ningún efecto parcial.
type DetalleUseCase struct {
	txRunner      TxRunner
	detalleRepo   repository.DetalleRepository
	operacionRepo repository.OperacionRepository
	productoRepo  repository.ProductoRepository
}

// NewDetalleUseCase construye el caso de uso.
func NewDetalleUseCase(
	txRunner TxRunner,
	detalleRepo repository.DetalleRepository,
	operacionRepo repository.OperacionRepository,
	productoRepo repository.ProductoRepository,
) *DetalleUseCase {
	return &DetalleUseCase{
		txRunner:      txRunner,
		detalleRepo:   detalleRepo,
		operacionRepo: operacionRepo,
		productoRepo:  productoRepo,
	}
}

// Create registra un detalle ajustando el stock según el tipo de operación:
// exportación descuenta (rechaza si no alcanza), importación suma. Luego
// recalcula el costo total de la operación.
func (uc *DetalleUseCase) Create(ctx context.Context, in dto.CreateDetalleRequest) (*dto.DetalleResponse, error) {
	if !in.Cantidad.GreaterThan(decimal.Zero) || !in.PrecioUnitario.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("cantidad y precio_unitario deben ser mayores que cero: %w", domain.ErrInvalidInput)
	}

	// Existencia fuera de la tx para responder 404 antes de abrir transacción
	op, err := uc.operacionRepo.GetByID(ctx, in.OperacionID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, fmt.Errorf("la operación asociada no existe: %w", domain.ErrNotFound)
	}
	producto, err := uc.productoRepo.GetByID(ctx, in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, fmt.Errorf("el producto asociado no existe: %w", domain.ErrNotFound)
	}

	detalle := &entity.DetalleOperacion{
		ProductoID:     in.ProductoID,
		OperacionID:    in.OperacionID,
		Cantidad:       in.Cantidad,
		PrecioUnitario: in.PrecioUnitario,
	}

	err = uc.txRunner.Run(ctx, func(
		detalleRepo repository.DetalleRepository,
		productoRepo repository.ProductoRepository,
		operacionRepo repository.OperacionRepository,
	) error {
		// Bloquea la fila del producto para serializar ajustes concurrentes
		p, err := productoRepo.GetForUpdate(ctx, in.ProductoID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("el producto asociado no existe: %w", domain.ErrNotFound)
		}

		stock, err := stockTrasCreacion(op, p, in.Cantidad)
		if err != nil {
			return err
		}
		if err := productoRepo.UpdateStock(ctx, p.ID, stock); err != nil {
			return err
		}
		if err := detalleRepo.Create(ctx, detalle); err != nil {
			return err
		}
		return recalcularCostoTotal(ctx, detalleRepo, operacionRepo, in.OperacionID)
	})
	if err != nil {
		return nil, err
	}
	return toDetalleResponse(detalle), nil
}

// GetByID obtiene un detalle por ID. (nil, nil) si no existe.
func (uc *DetalleUseCase) GetByID(ctx context.Context, id int64) (*dto.DetalleResponse, error) {
	detalle, err := uc.detalleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, nil
	}
	return toDetalleResponse(detalle), nil
}

// List lista todos los detalles.
func (uc *DetalleUseCase) List(ctx context.Context) ([]dto.DetalleResponse, error) {
	list, err := uc.detalleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DetalleResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDetalleResponse(d))
	}
	return items, nil
}

// Update cambia cantidad y precio unitario de un detalle, ajustando el stock
// por la diferencia de cantidades y recalculando el costo total.
func (uc *DetalleUseCase) Update(ctx context.Context, id int64, in dto.UpdateDetalleRequest) (*dto.DetalleResponse, error) {
	if !in.Cantidad.GreaterThan(decimal.Zero) || !in.PrecioUnitario.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("cantidad y precio_unitario deben ser mayores que cero: %w", domain.ErrInvalidInput)
	}

	existente, err := uc.detalleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, fmt.Errorf("detalle no encontrado: %w", domain.ErrNotFound)
	}

	var actualizado *entity.DetalleOperacion
	err = uc.txRunner.Run(ctx, func(
		detalleRepo repository.DetalleRepository,
		productoRepo repository.ProductoRepository,
		operacionRepo repository.OperacionRepository,
	) error {
		detalle, op, p, err := cargarDetalleConRelaciones(ctx, id, detalleRepo, operacionRepo, productoRepo)
		if err != nil {
			return err
		}

		stock, err := stockTrasActualizacion(op, p, detalle.Cantidad, in.Cantidad)
		if err != nil {
			return err
		}
		if err := productoRepo.UpdateStock(ctx, p.ID, stock); err != nil {
			return err
		}

		detalle.Cantidad = in.Cantidad
		detalle.PrecioUnitario = in.PrecioUnitario
		if err := detalleRepo.Update(ctx, detalle); err != nil {
			return err
		}
		actualizado = detalle
		return recalcularCostoTotal(ctx, detalleRepo, operacionRepo, detalle.OperacionID)
	})
	if err != nil {
		return nil, err
	}
	return toDetalleResponse(actualizado), nil
}

// Delete elimina un detalle revirtiendo su efecto sobre el stock: una
// exportación devuelve stock, una importación lo resta (rechazada si quedara
// negativo). Recalcula el costo total al final.
func (uc *DetalleUseCase) Delete(ctx context.Context, id int64) error {
	existente, err := uc.detalleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existente == nil {
		return fmt.Errorf("detalle no encontrado: %w", domain.ErrNotFound)
	}

	return uc.txRunner.Run(ctx, func(
		detalleRepo repository.DetalleRepository,
		productoRepo repository.ProductoRepository,
		operacionRepo repository.OperacionRepository,
	) error {
		detalle, op, p, err := cargarDetalleConRelaciones(ctx, id, detalleRepo, operacionRepo, productoRepo)
		if err != nil {
			return err
		}

		stock, err := stockTrasEliminacion(op, p, detalle.Cantidad)
		if err != nil {
			return err
		}
		if err := productoRepo.UpdateStock(ctx, p.ID, stock); err != nil {
			return err
		}
		if err := detalleRepo.Delete(ctx, id); err != nil {
			return err
		}
		return recalcularCostoTotal(ctx, detalleRepo, operacionRepo, detalle.OperacionID)
	})
}

// cargarDetalleConRelaciones relee el detalle dentro de la tx y trae su
// operación y su producto, este último con la fila bloqueada.
func cargarDetalleConRelaciones(
	ctx context.Context,
	id int64,
	detalleRepo repository.DetalleRepository,
	operacionRepo repository.OperacionRepository,
	productoRepo repository.ProductoRepository,
) (*entity.DetalleOperacion, *entity.Operacion, *entity.Producto, error) {
	detalle, err := detalleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if detalle == nil {
		return nil, nil, nil, fmt.Errorf("detalle no encontrado: %w", domain.ErrNotFound)
	}
	op, err := operacionRepo.GetByID(ctx, detalle.OperacionID)
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := productoRepo.GetForUpdate(ctx, detalle.ProductoID)
	if err != nil {
		return nil, nil, nil, err
	}
	if op == nil || p == nil {
		return nil, nil, nil, fmt.Errorf("la operación o el producto asociados al detalle no existen: %w", domain.ErrInvalidInput)
	}
	return detalle, op, p, nil
}

// stockTrasCreacion stock resultante de agregar un detalle nuevo.
func stockTrasCreacion(op *entity.Operacion, p *entity.Producto, cantidad decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case op.EsExportacion():
		if cantidad.GreaterThan(p.StockDisponible) {
			return decimal.Zero, fmt.Errorf(
				"no se puede exportar %s %s de %s, stock disponible: %s: %w",
				cantidad, p.UnidadMedida, p.Nombre, p.StockDisponible, domain.ErrStockInsuficiente,
			)
		}
		return p.StockDisponible.Sub(cantidad), nil
	case op.EsImportacion():
		return p.StockDisponible.Add(cantidad), nil
	}
	return p.StockDisponible, nil
}

// stockTrasActualizacion stock resultante de cambiar la cantidad de un detalle.
func stockTrasActualizacion(op *entity.Operacion, p *entity.Producto, anterior, nueva decimal.Decimal) (decimal.Decimal, error) {
	diferencia := nueva.Sub(anterior)
	stock := p.StockDisponible

	switch {
	case op.EsExportacion():
		// diferencia > 0 significa exportar MÁS cantidad
		if diferencia.IsPositive() && diferencia.GreaterThan(stock) {
			return decimal.Zero, fmt.Errorf(
				"no se puede aumentar la cantidad a %s, stock disponible: %s: %w",
				nueva, stock, domain.ErrStockInsuficiente,
			)
		}
		stock = stock.Sub(diferencia)
	case op.EsImportacion():
		stock = stock.Add(diferencia)
	}

	// Nunca debería dispararse dadas las ramas anteriores
	if stock.IsNegative() {
		return decimal.Zero, domain.ErrStockNegativo
	}
	return stock, nil
}

// stockTrasEliminacion stock resultante de quitar un detalle.
func stockTrasEliminacion(op *entity.Operacion, p *entity.Producto, cantidad decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case op.EsExportacion():
		// Se devuelve el stock reservado por la exportación
		return p.StockDisponible.Add(cantidad), nil
	case op.EsImportacion():
		stock := p.StockDisponible.Sub(cantidad)
		if stock.IsNegative() {
			return decimal.Zero, fmt.Errorf(
				"no se puede eliminar el detalle, dejaría el stock del producto en negativo: %w",
				domain.ErrStockNegativo,
			)
		}
		return stock, nil
	}
	return p.StockDisponible, nil
}

// recalcularCostoTotal re-deriva costo_total desde los detalles persistidos
// (suma completa, nunca incremental) para que el campo no pueda divergir.
func recalcularCostoTotal(
	ctx context.Context,
	detalleRepo repository.DetalleRepository,
	operacionRepo repository.OperacionRepository,
	operacionID int64,
) error {
	total, err := detalleRepo.SumTotalByOperacion(ctx, operacionID)
	if err != nil {
		return err
	}
	return operacionRepo.UpdateCostoTotal(ctx, operacionID, total)
}

func toDetalleResponse(d *entity.DetalleOperacion) *dto.DetalleResponse {
	if d == nil {
		return nil
	}
	return &dto.DetalleResponse{
		ID:             d.ID,
		ProductoID:     d.ProductoID,
		OperacionID:    d.OperacionID,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
	}
}
