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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *ProveedorRepo) Create(ctx context.Context, p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (nombre, tipo, email, telefono, pais_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(ctx, query, p.Nombre, p.Tipo, p.Email, p.Telefono, p.PaisID).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(ctx context.Context, id int64) (*entity.Proveedor, error) {
	query := `SELECT id, nombre, tipo, email, telefono, pais_id FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Email, &p.Telefono, &p.PaisID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// List lista todos los proveedores.
func (r *ProveedorRepo) List(ctx context.Context) ([]*entity.Proveedor, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, tipo, email, telefono, pais_id FROM proveedores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Email, &p.Telefono, &p.PaisID); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor existente.
func (r *ProveedorRepo) Update(ctx context.Context, p *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre = $2, tipo = $3, email = $4, telefono = $5, pais_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Tipo, p.Email, p.Telefono, p.PaisID)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID. Falla si alguna operación lo referencia.
func (r *ProveedorRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("proveedor %d: %w", id, domain.ErrEnUso)
		}
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}
