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

var _ repository.PaisRepository = (*PaisRepo)(nil)

// PaisRepo implementación del puerto PaisRepository sobre PostgreSQL (usable con pool o tx).
type PaisRepo struct {
	q Querier
}

// NewPaisRepository construye el adaptador de persistencia para países. Pasar pool o tx (Querier).
func NewPaisRepository(q Querier) *PaisRepo {
	return &PaisRepo{q: q}
}

// Create persiste un nuevo país. El código ISO es único.
func (r *PaisRepo) Create(ctx context.Context, p *entity.Pais) error {
	query := `
		INSERT INTO paises (nombre, codigo_iso)
		VALUES ($1, $2) RETURNING id`
	err := r.q.QueryRow(ctx, query, p.Nombre, p.CodigoISO).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("código ISO %q: %w", p.CodigoISO, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert pais: %w", err)
	}
	return nil
}

// GetByID obtiene un país por ID.
func (r *PaisRepo) GetByID(ctx context.Context, id int64) (*entity.Pais, error) {
	query := `SELECT id, nombre, codigo_iso FROM paises WHERE id = $1`
	var p entity.Pais
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.CodigoISO)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pais: %w", err)
	}
	return &p, nil
}

// List lista todos los países.
func (r *PaisRepo) List(ctx context.Context) ([]*entity.Pais, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, codigo_iso FROM paises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list paises: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pais
	for rows.Next() {
		var p entity.Pais
		if err := rows.Scan(&p.ID, &p.Nombre, &p.CodigoISO); err != nil {
			return nil, fmt.Errorf("scan pais: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un país existente.
func (r *PaisRepo) Update(ctx context.Context, p *entity.Pais) error {
	query := `UPDATE paises SET nombre = $2, codigo_iso = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.CodigoISO)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("código ISO %q: %w", p.CodigoISO, domain.ErrDuplicate)
		}
		return fmt.Errorf("update pais: %w", err)
	}
	return nil
}

// Delete elimina un país por ID. Falla si otros registros lo referencian.
func (r *PaisRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM paises WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("pais %d: %w", id, domain.ErrEnUso)
		}
		return fmt.Errorf("delete pais: %w", err)
	}
	return nil
}
