package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, nombre, tipo, unidad_medida, precio_referencia, stock_disponible, categoria_id`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, tipo, unidad_medida, precio_referencia, stock_disponible, categoria_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.Tipo, p.UnidadMedida, p.PrecioReferencia, p.StockDisponible, p.CategoriaID,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción: serializa los ajustes de stock
// concurrentes sobre el mismo producto.
func (r *ProductoRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *ProductoRepo) getOne(ctx context.Context, query string, id int64) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Nombre, &p.Tipo, &p.UnidadMedida, &p.PrecioReferencia, &p.StockDisponible, &p.CategoriaID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista todos los productos.
func (r *ProductoRepo) List(ctx context.Context) ([]*entity.Producto, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productoColumns+` FROM productos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Tipo, &p.UnidadMedida, &p.PrecioReferencia, &p.StockDisponible, &p.CategoriaID); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente. No toca stock_disponible: eso lo hace
// UpdateStock dentro del ledger de detalles.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, tipo = $3, unidad_medida = $4, precio_referencia = $5, categoria_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Tipo, p.UnidadMedida, p.PrecioReferencia, p.CategoriaID)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateStock escribe el stock disponible (usado por el ledger de detalles).
func (r *ProductoRepo) UpdateStock(ctx context.Context, id int64, stock decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `UPDATE productos SET stock_disponible = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Falla si detalles o inspecciones lo referencian.
func (r *ProductoRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("producto %d: %w", id, domain.ErrEnUso)
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
