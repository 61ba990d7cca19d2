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

var _ repository.OperacionRepository = (*OperacionRepo)(nil)

// OperacionRepo implementación del puerto OperacionRepository sobre PostgreSQL (usable con pool o tx).
type OperacionRepo struct {
	q Querier
}

// NewOperacionRepository construye el adaptador de persistencia para operaciones. Pasar pool o tx (Querier).
func NewOperacionRepository(q Querier) *OperacionRepo {
	return &OperacionRepo{q: q}
}

const operacionColumns = `id, tipo, fecha, estado, costo_total, observaciones,
		cliente_id, proveedor_id, pais_origen_id, pais_destino_id,
		puerto_origen_id, puerto_destino_id, medio_transporte_id`

// Create persiste una nueva operación. costo_total entra como esté en la
// entidad (el caso de uso siempre manda 0).
func (r *OperacionRepo) Create(ctx context.Context, o *entity.Operacion) error {
	query := `
		INSERT INTO operaciones (tipo, fecha, estado, costo_total, observaciones,
			cliente_id, proveedor_id, pais_origen_id, pais_destino_id,
			puerto_origen_id, puerto_destino_id, medio_transporte_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		o.Tipo, o.Fecha, o.Estado, o.CostoTotal, o.Observaciones,
		o.ClienteID, o.ProveedorID, o.PaisOrigenID, o.PaisDestinoID,
		o.PuertoOrigenID, o.PuertoDestinoID, o.MedioTransporteID,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert operacion: %w", err)
	}
	return nil
}

// GetByID obtiene una operación por ID.
func (r *OperacionRepo) GetByID(ctx context.Context, id int64) (*entity.Operacion, error) {
	query := `SELECT ` + operacionColumns + ` FROM operaciones WHERE id = $1`
	var o entity.Operacion
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Tipo, &o.Fecha, &o.Estado, &o.CostoTotal, &o.Observaciones,
		&o.ClienteID, &o.ProveedorID, &o.PaisOrigenID, &o.PaisDestinoID,
		&o.PuertoOrigenID, &o.PuertoDestinoID, &o.MedioTransporteID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operacion: %w", err)
	}
	return &o, nil
}

// List lista todas las operaciones.
func (r *OperacionRepo) List(ctx context.Context) ([]*entity.Operacion, error) {
	rows, err := r.q.Query(ctx, `SELECT `+operacionColumns+` FROM operaciones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list operaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operacion
	for rows.Next() {
		var o entity.Operacion
		if err := rows.Scan(
			&o.ID, &o.Tipo, &o.Fecha, &o.Estado, &o.CostoTotal, &o.Observaciones,
			&o.ClienteID, &o.ProveedorID, &o.PaisOrigenID, &o.PaisDestinoID,
			&o.PuertoOrigenID, &o.PuertoDestinoID, &o.MedioTransporteID,
		); err != nil {
			return nil, fmt.Errorf("scan operacion: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza una operación existente. No toca costo_total: eso lo hace
// UpdateCostoTotal dentro del ledger de detalles.
func (r *OperacionRepo) Update(ctx context.Context, o *entity.Operacion) error {
	query := `
		UPDATE operaciones SET tipo = $2, fecha = $3, estado = $4, observaciones = $5,
			cliente_id = $6, proveedor_id = $7, pais_origen_id = $8, pais_destino_id = $9,
			puerto_origen_id = $10, puerto_destino_id = $11, medio_transporte_id = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Tipo, o.Fecha, o.Estado, o.Observaciones,
		o.ClienteID, o.ProveedorID, o.PaisOrigenID, o.PaisDestinoID,
		o.PuertoOrigenID, o.PuertoDestinoID, o.MedioTransporteID,
	)
	if err != nil {
		return fmt.Errorf("update operacion: %w", err)
	}
	return nil
}

// UpdateCostoTotal escribe el costo total recalculado desde los detalles.
func (r *OperacionRepo) UpdateCostoTotal(ctx context.Context, id int64, total decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `UPDATE operaciones SET costo_total = $2 WHERE id = $1`, id, total)
	if err != nil {
		return fmt.Errorf("update costo_total operacion: %w", err)
	}
	return nil
}

// Delete elimina una operación por ID. Falla si detalles o inspecciones la referencian.
func (r *OperacionRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM operaciones WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("operacion %d: %w", id, domain.ErrEnUso)
		}
		return fmt.Errorf("delete operacion: %w", err)
	}
	return nil
}
