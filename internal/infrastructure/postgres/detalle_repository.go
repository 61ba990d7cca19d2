package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

var _ repository.DetalleRepository = (*DetalleRepo)(nil)

// DetalleRepo implementación del puerto DetalleRepository sobre PostgreSQL (usable con pool o tx).
type DetalleRepo struct {
	q Querier
}

// NewDetalleRepository construye el adaptador de persistencia para detalles de operación. Pasar pool o tx (Querier).
func NewDetalleRepository(q Querier) *DetalleRepo {
	return &DetalleRepo{q: q}
}

// Create persiste un nuevo detalle.
func (r *DetalleRepo) Create(ctx context.Context, d *entity.DetalleOperacion) error {
	query := `
		INSERT INTO detalles_operacion (producto_id, operacion_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.q.QueryRow(ctx, query, d.ProductoID, d.OperacionID, d.Cantidad, d.PrecioUnitario).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// GetByID obtiene un detalle por ID.
func (r *DetalleRepo) GetByID(ctx context.Context, id int64) (*entity.DetalleOperacion, error) {
	query := `SELECT id, producto_id, operacion_id, cantidad, precio_unitario FROM detalles_operacion WHERE id = $1`
	var d entity.DetalleOperacion
	err := r.q.QueryRow(ctx, query, id).Scan(&d.ID, &d.ProductoID, &d.OperacionID, &d.Cantidad, &d.PrecioUnitario)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle: %w", err)
	}
	return &d, nil
}

// List lista todos los detalles.
func (r *DetalleRepo) List(ctx context.Context) ([]*entity.DetalleOperacion, error) {
	return r.list(ctx, `SELECT id, producto_id, operacion_id, cantidad, precio_unitario FROM detalles_operacion ORDER BY id`)
}

// ListByOperacion lista los detalles de una operación.
func (r *DetalleRepo) ListByOperacion(ctx context.Context, operacionID int64) ([]*entity.DetalleOperacion, error) {
	return r.list(ctx,
		`SELECT id, producto_id, operacion_id, cantidad, precio_unitario FROM detalles_operacion WHERE operacion_id = $1 ORDER BY id`,
		operacionID)
}

func (r *DetalleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.DetalleOperacion, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleOperacion
	for rows.Next() {
		var d entity.DetalleOperacion
		if err := rows.Scan(&d.ID, &d.ProductoID, &d.OperacionID, &d.Cantidad, &d.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza cantidad y precio unitario de un detalle. Producto y
// operación no son reasignables.
func (r *DetalleRepo) Update(ctx context.Context, d *entity.DetalleOperacion) error {
	query := `UPDATE detalles_operacion SET cantidad = $2, precio_unitario = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, d.ID, d.Cantidad, d.PrecioUnitario)
	if err != nil {
		return fmt.Errorf("update detalle: %w", err)
	}
	return nil
}

// Delete elimina un detalle por ID.
func (r *DetalleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM detalles_operacion WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle: %w", err)
	}
	return nil
}

// SumTotalByOperacion suma cantidad*precio_unitario de los detalles de la
// operación. 0 si no hay detalles.
func (r *DetalleRepo) SumTotalByOperacion(ctx context.Context, operacionID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(cantidad * precio_unitario), 0)
		FROM detalles_operacion WHERE operacion_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, operacionID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum detalles: %w", err)
	}
	return total, nil
}

// CountByOperacion cuenta los detalles de la operación.
func (r *DetalleRepo) CountByOperacion(ctx context.Context, operacionID int64) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM detalles_operacion WHERE operacion_id = $1`, operacionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count detalles: %w", err)
	}
	return count, nil
}
