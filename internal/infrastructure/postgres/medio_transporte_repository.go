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

var _ repository.MedioTransporteRepository = (*MedioTransporteRepo)(nil)

// MedioTransporteRepo implementación del puerto MedioTransporteRepository sobre PostgreSQL (usable con pool o tx).
type MedioTransporteRepo struct {
	q Querier
}

// NewMedioTransporteRepository construye el adaptador de persistencia para medios de transporte. Pasar pool o tx (Querier).
func NewMedioTransporteRepository(q Querier) *MedioTransporteRepo {
	return &MedioTransporteRepo{q: q}
}

// Create persiste un nuevo medio de transporte.
func (r *MedioTransporteRepo) Create(ctx context.Context, m *entity.MedioTransporte) error {
	query := `
		INSERT INTO medios_transporte (tipo, empresa)
		VALUES ($1, $2) RETURNING id`
	err := r.q.QueryRow(ctx, query, m.Tipo, m.Empresa).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert medio_transporte: %w", err)
	}
	return nil
}

// GetByID obtiene un medio de transporte por ID.
func (r *MedioTransporteRepo) GetByID(ctx context.Context, id int64) (*entity.MedioTransporte, error) {
	query := `SELECT id, tipo, empresa FROM medios_transporte WHERE id = $1`
	var m entity.MedioTransporte
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.Tipo, &m.Empresa)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medio_transporte: %w", err)
	}
	return &m, nil
}

// List lista todos los medios de transporte.
func (r *MedioTransporteRepo) List(ctx context.Context) ([]*entity.MedioTransporte, error) {
	rows, err := r.q.Query(ctx, `SELECT id, tipo, empresa FROM medios_transporte ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list medios_transporte: %w", err)
	}
	defer rows.Close()
	var list []*entity.MedioTransporte
	for rows.Next() {
		var m entity.MedioTransporte
		if err := rows.Scan(&m.ID, &m.Tipo, &m.Empresa); err != nil {
			return nil, fmt.Errorf("scan medio_transporte: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un medio de transporte existente.
func (r *MedioTransporteRepo) Update(ctx context.Context, m *entity.MedioTransporte) error {
	query := `UPDATE medios_transporte SET tipo = $2, empresa = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, m.ID, m.Tipo, m.Empresa)
	if err != nil {
		return fmt.Errorf("update medio_transporte: %w", err)
	}
	return nil
}

// Delete elimina un medio de transporte por ID. Falla si alguna operación lo referencia.
func (r *MedioTransporteRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM medios_transporte WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("medio_transporte %d: %w", id, domain.ErrEnUso)
		}
		return fmt.Errorf("delete medio_transporte: %w", err)
	}
	return nil
}
