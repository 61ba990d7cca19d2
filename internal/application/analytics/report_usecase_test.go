package analytics_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/agrocomercio-api/internal/application/analytics"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// fakeReporteRepo registra los parámetros recibidos y reproduce sobre un
// catálogo fijo el orden descendente y el recorte del ranking que en
// producción hacen ORDER BY y LIMIT.
type fakeReporteRepo struct {
	limitRecibido int
	anioRecibido  int
}

func (r *fakeReporteRepo) OperacionesPorEstado(_ context.Context) ([]repository.ResumenEstado, error) {
	return []repository.ResumenEstado{
		{Estado: "confirmada", CantidadOperaciones: 3, CostoTotal: decimal.RequireFromString("1250.50")},
		{Estado: "pendiente", CantidadOperaciones: 1, CostoTotal: decimal.Zero},
	}, nil
}

func (r *fakeReporteRepo) TopProductosExportados(_ context.Context, limit int) ([]repository.ProductoExportado, error) {
	r.limitRecibido = limit
	rows := []repository.ProductoExportado{
		{Producto: "Mango", CantidadExportada: decimal.NewFromInt(120)},
		{Producto: "Plátano", CantidadExportada: decimal.NewFromInt(500)},
		{Producto: "Brócoli", CantidadExportada: decimal.NewFromInt(45)},
		{Producto: "Cacao", CantidadExportada: decimal.NewFromInt(310)},
		{Producto: "Piña", CantidadExportada: decimal.NewFromInt(90)},
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CantidadExportada.GreaterThan(rows[j].CantidadExportada)
	})
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *fakeReporteRepo) IngresosPorMes(_ context.Context, anio int) ([]repository.IngresoMensual, error) {
	r.anioRecibido = anio
	return []repository.IngresoMensual{
		{Mes: 1, Ingresos: decimal.NewFromInt(300)},
		{Mes: 3, Ingresos: decimal.NewFromInt(950)},
	}, nil
}

func TestReportUseCase_OperacionesPorEstado(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeReporteRepo{})

	out, err := uc.OperacionesPorEstado(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "confirmada", out[0].Estado)
	assert.Equal(t, 3, out[0].CantidadOperaciones)
	assert.True(t, out[0].CostoTotal.Equal(decimal.RequireFromString("1250.50")))
}

func TestReportUseCase_TopProductosLimitePorDefecto(t *testing.T) {
	repo := &fakeReporteRepo{}
	uc := analytics.NewReportUseCase(repo)

	// un limit no positivo cae al valor por defecto
	out, err := uc.TopProductosExportados(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, analytics.DefaultTopLimit, repo.limitRecibido)
	assert.Len(t, out, 5)

	_, err = uc.TopProductosExportados(context.Background(), -3)
	require.NoError(t, err)
	assert.Equal(t, analytics.DefaultTopLimit, repo.limitRecibido)
}

func TestReportUseCase_TopProductosLimiteExplicito(t *testing.T) {
	repo := &fakeReporteRepo{}
	uc := analytics.NewReportUseCase(repo)

	out, err := uc.TopProductosExportados(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, repo.limitRecibido)
	require.Len(t, out, 2)
	assert.Equal(t, "Plátano", out[0].Producto)
}

func TestReportUseCase_TopProductosRecortaYOrdena(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeReporteRepo{})

	// limit menor que el catálogo: exactamente limit filas, descendentes
	out, err := uc.TopProductosExportados(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Plátano", out[0].Producto)
	assert.Equal(t, "Cacao", out[1].Producto)
	assert.Equal(t, "Mango", out[2].Producto)
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i-1].CantidadExportada.GreaterThanOrEqual(out[i].CantidadExportada),
			"el ranking debe venir en orden descendente")
	}
}

func TestReportUseCase_IngresosPorMes(t *testing.T) {
	repo := &fakeReporteRepo{}
	uc := analytics.NewReportUseCase(repo)

	out, err := uc.IngresosPorMes(context.Background(), 2026)

	require.NoError(t, err)
	assert.Equal(t, 2026, repo.anioRecibido)
	require.Len(t, out, 2)
	assert.Equal(t, 3, out[1].Mes)
	assert.True(t, out[1].Ingresos.Equal(decimal.NewFromInt(950)))
}
