package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL (usable con pool o tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(ctx context.Context, c *entity.CategoriaProducto) error {
	query := `
		INSERT INTO categorias_producto (nombre, descripcion)
		VALUES ($1, $2) RETURNING id`
	err := r.q.QueryRow(ctx, query, c.Nombre, c.Descripcion).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(ctx context.Context, id int64) (*entity.CategoriaProducto, error) {
	query := `SELECT id, nombre, descripcion FROM categorias_producto WHERE id = $1`
	var c entity.CategoriaProducto
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Nombre, &c.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List lista todas las categorías.
func (r *CategoriaRepo) List(ctx context.Context) ([]*entity.CategoriaProducto, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, descripcion FROM categorias_producto ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoriaProducto
	for rows.Next() {
		var c entity.CategoriaProducto
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(ctx context.Context, c *entity.CategoriaProducto) error {
	query := `UPDATE categorias_producto SET nombre = $2, descripcion = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.Descripcion)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID. Falla si algún producto la referencia.
func (r *CategoriaRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categorias_producto WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("categoria %d: %w", id, domain.ErrEnUso)
		}
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
