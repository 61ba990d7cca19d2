package http_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// memPaisRepo repositorio de países en memoria para las pruebas de handlers.
type memPaisRepo struct {
	items  map[int64]entity.Pais
	nextID int64
}

func newMemPaisRepo() *memPaisRepo {
	return &memPaisRepo{items: make(map[int64]entity.Pais)}
}

func (r *memPaisRepo) Create(_ context.Context, p *entity.Pais) error {
	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = *p
	return nil
}

func (r *memPaisRepo) GetByID(_ context.Context, id int64) (*entity.Pais, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memPaisRepo) List(_ context.Context) ([]*entity.Pais, error) {
	out := make([]*entity.Pais, 0, len(r.items))
	for id := range r.items {
		p := r.items[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *memPaisRepo) Update(_ context.Context, p *entity.Pais) error {
	r.items[p.ID] = *p
	return nil
}

func (r *memPaisRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

// memReporteRepo repositorio de reportes con filas fijas; registra los
// parámetros recibidos para poder asertarlos.
type memReporteRepo struct {
	limitRecibido int
	anioRecibido  int
}

func (r *memReporteRepo) OperacionesPorEstado(_ context.Context) ([]repository.ResumenEstado, error) {
	return []repository.ResumenEstado{
		{Estado: "pendiente", CantidadOperaciones: 1, CostoTotal: decimal.Zero},
	}, nil
}

func (r *memReporteRepo) TopProductosExportados(_ context.Context, limit int) ([]repository.ProductoExportado, error) {
	r.limitRecibido = limit
	return []repository.ProductoExportado{
		{Producto: "Plátano", CantidadExportada: decimal.NewFromInt(500)},
	}, nil
}

func (r *memReporteRepo) IngresosPorMes(_ context.Context, anio int) ([]repository.IngresoMensual, error) {
	r.anioRecibido = anio
	return []repository.IngresoMensual{
		{Mes: 1, Ingresos: decimal.NewFromInt(300)},
	}, nil
}

var (
	_ repository.PaisRepository    = (*memPaisRepo)(nil)
	_ repository.ReporteRepository = (*memReporteRepo)(nil)
)
