package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

var _ repository.InspeccionRepository = (*InspeccionRepo)(nil)

// InspeccionRepo implementación del puerto InspeccionRepository sobre PostgreSQL (usable con pool o tx).
type InspeccionRepo struct {
	q Querier
}

// NewInspeccionRepository construye el adaptador de persistencia para inspecciones de calidad. Pasar pool o tx (Querier).
func NewInspeccionRepository(q Querier) *InspeccionRepo {
	return &InspeccionRepo{q: q}
}

// Create persiste una nueva inspección.
func (r *InspeccionRepo) Create(ctx context.Context, i *entity.InspeccionCalidad) error {
	query := `
		INSERT INTO inspecciones_calidad (fecha, resultado, observaciones, operacion_id, producto_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(ctx, query, i.Fecha, i.Resultado, i.Observaciones, i.OperacionID, i.ProductoID).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("insert inspeccion: %w", err)
	}
	return nil
}

// GetByID obtiene una inspección por ID.
func (r *InspeccionRepo) GetByID(ctx context.Context, id int64) (*entity.InspeccionCalidad, error) {
	query := `SELECT id, fecha, resultado, observaciones, operacion_id, producto_id FROM inspecciones_calidad WHERE id = $1`
	var i entity.InspeccionCalidad
	err := r.q.QueryRow(ctx, query, id).Scan(&i.ID, &i.Fecha, &i.Resultado, &i.Observaciones, &i.OperacionID, &i.ProductoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inspeccion: %w", err)
	}
	return &i, nil
}

// List lista todas las inspecciones.
func (r *InspeccionRepo) List(ctx context.Context) ([]*entity.InspeccionCalidad, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, fecha, resultado, observaciones, operacion_id, producto_id FROM inspecciones_calidad ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list inspecciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.InspeccionCalidad
	for rows.Next() {
		var i entity.InspeccionCalidad
		if err := rows.Scan(&i.ID, &i.Fecha, &i.Resultado, &i.Observaciones, &i.OperacionID, &i.ProductoID); err != nil {
			return nil, fmt.Errorf("scan inspeccion: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza una inspección existente. La operación no es reasignable.
func (r *InspeccionRepo) Update(ctx context.Context, i *entity.InspeccionCalidad) error {
	query := `
		UPDATE inspecciones_calidad SET fecha = $2, resultado = $3, observaciones = $4, producto_id = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, i.ID, i.Fecha, i.Resultado, i.Observaciones, i.ProductoID)
	if err != nil {
		return fmt.Errorf("update inspeccion: %w", err)
	}
	return nil
}

// Delete elimina una inspección por ID.
func (r *InspeccionRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inspecciones_calidad WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inspeccion: %w", err)
	}
	return nil
}
