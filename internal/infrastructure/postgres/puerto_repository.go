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

var _ repository.PuertoRepository = (*PuertoRepo)(nil)

// PuertoRepo implementación del puerto PuertoRepository sobre PostgreSQL (usable con pool o tx).
type PuertoRepo struct {
	q Querier
}

// NewPuertoRepository construye el adaptador de persistencia para puertos. Pasar pool o tx (Querier).
func NewPuertoRepository(q Querier) *PuertoRepo {
	return &PuertoRepo{q: q}
}

// Create persiste un nuevo puerto.
func (r *PuertoRepo) Create(ctx context.Context, p *entity.Puerto) error {
	query := `
		INSERT INTO puertos (nombre, tipo, pais_id)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(ctx, query, p.Nombre, p.Tipo, p.PaisID).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert puerto: %w", err)
	}
	return nil
}

// GetByID obtiene un puerto por ID.
func (r *PuertoRepo) GetByID(ctx context.Context, id int64) (*entity.Puerto, error) {
	query := `SELECT id, nombre, tipo, pais_id FROM puertos WHERE id = $1`
	var p entity.Puerto
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.Tipo, &p.PaisID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get puerto: %w", err)
	}
	return &p, nil
}

// List lista todos los puertos.
func (r *PuertoRepo) List(ctx context.Context) ([]*entity.Puerto, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, tipo, pais_id FROM puertos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list puertos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Puerto
	for rows.Next() {
		var p entity.Puerto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Tipo, &p.PaisID); err != nil {
			return nil, fmt.Errorf("scan puerto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un puerto existente.
func (r *PuertoRepo) Update(ctx context.Context, p *entity.Puerto) error {
	query := `UPDATE puertos SET nombre = $2, tipo = $3, pais_id = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Tipo, p.PaisID)
	if err != nil {
		return fmt.Errorf("update puerto: %w", err)
	}
	return nil
}

// Delete elimina un puerto por ID. Falla si alguna operación lo referencia.
func (r *PuertoRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM puertos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("puerto %d: %w", id, domain.ErrEnUso)
		}
		return fmt.Errorf("delete puerto: %w", err)
	}
	return nil
}
