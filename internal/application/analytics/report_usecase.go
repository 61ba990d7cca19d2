package analytics

import (
	"context"

	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// DefaultTopLimit cantidad de productos del ranking cuando no se pide otra.
const DefaultTopLimit = 5

// ReportUseCase reportes agregados de solo lectura sobre el historial de
// operaciones. No modifica estado.
type ReportUseCase struct {
	repo repository.ReporteRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReporteRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// OperacionesPorEstado cantidad y costo acumulado de operaciones por estado.
func (uc *ReportUseCase) OperacionesPorEstado(ctx context.Context) ([]dto.ResumenEstadoDTO, error) {
	rows, err := uc.repo.OperacionesPorEstado(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResumenEstadoDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ResumenEstadoDTO{
			Estado:              r.Estado,
			CantidadOperaciones: r.CantidadOperaciones,
			CostoTotal:          r.CostoTotal,
		})
	}
	return items, nil
}

// TopProductosExportados ranking de productos por cantidad exportada
// acumulada. Un limit <= 0 usa DefaultTopLimit.
func (uc *ReportUseCase) TopProductosExportados(ctx context.Context, limit int) ([]dto.TopProductoDTO, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	rows, err := uc.repo.TopProductosExportados(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TopProductoDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.TopProductoDTO{
			Producto:          r.Producto,
			CantidadExportada: r.CantidadExportada,
		})
	}
	return items, nil
}

// IngresosPorMes suma de costo_total de las operaciones de cada mes del año
// dado. Solo aparecen meses con operaciones.
func (uc *ReportUseCase) IngresosPorMes(ctx context.Context, anio int) ([]dto.IngresoMensualDTO, error) {
	rows, err := uc.repo.IngresosPorMes(ctx, anio)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngresoMensualDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.IngresoMensualDTO{Mes: r.Mes, Ingresos: r.Ingresos})
	}
	return items, nil
}
