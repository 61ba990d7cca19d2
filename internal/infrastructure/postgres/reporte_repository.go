package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas agregadas de solo lectura sobre PostgreSQL.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// OperacionesPorEstado cantidad y costo acumulado de operaciones por estado.
func (r *ReporteRepo) OperacionesPorEstado(ctx context.Context) ([]repository.ResumenEstado, error) {
	query := `
		SELECT estado, COUNT(*), COALESCE(SUM(costo_total), 0)
		FROM operaciones
		GROUP BY estado
		ORDER BY estado`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("operaciones por estado: %w", err)
	}
	defer rows.Close()
	var list []repository.ResumenEstado
	for rows.Next() {
		var re repository.ResumenEstado
		if err := rows.Scan(&re.Estado, &re.CantidadOperaciones, &re.CostoTotal); err != nil {
			return nil, fmt.Errorf("scan resumen estado: %w", err)
		}
		list = append(list, re)
	}
	return list, rows.Err()
}

// TopProductosExportados ranking por cantidad exportada acumulada. Empates se
// resuelven por id de producto ascendente para que el orden sea estable.
func (r *ReporteRepo) TopProductosExportados(ctx context.Context, limit int) ([]repository.ProductoExportado, error) {
	query := `
		SELECT p.nombre, SUM(d.cantidad)
		FROM detalles_operacion d
		JOIN operaciones o ON o.id = d.operacion_id
		JOIN productos p ON p.id = d.producto_id
		WHERE o.tipo = 'exportacion'
		GROUP BY p.id, p.nombre
		ORDER BY SUM(d.cantidad) DESC, p.id ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos exportados: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductoExportado
	for rows.Next() {
		var pe repository.ProductoExportado
		if err := rows.Scan(&pe.Producto, &pe.CantidadExportada); err != nil {
			return nil, fmt.Errorf("scan producto exportado: %w", err)
		}
		list = append(list, pe)
	}
	return list, rows.Err()
}

// IngresosPorMes suma de costo_total por mes del año dado. Solo devuelve meses
// con operaciones.
func (r *ReporteRepo) IngresosPorMes(ctx context.Context, anio int) ([]repository.IngresoMensual, error) {
	query := `
		SELECT EXTRACT(MONTH FROM fecha)::int, COALESCE(SUM(costo_total), 0)
		FROM operaciones
		WHERE EXTRACT(YEAR FROM fecha) = $1
		GROUP BY EXTRACT(MONTH FROM fecha)
		ORDER BY EXTRACT(MONTH FROM fecha)`
	rows, err := r.q.Query(ctx, query, anio)
	if err != nil {
		return nil, fmt.Errorf("ingresos por mes: %w", err)
	}
	defer rows.Close()
	var list []repository.IngresoMensual
	for rows.Next() {
		var im repository.IngresoMensual
		if err := rows.Scan(&im.Mes, &im.Ingresos); err != nil {
			return nil, fmt.Errorf("scan ingreso mensual: %w", err)
		}
		list = append(list, im)
	}
	return list, rows.Err()
}
