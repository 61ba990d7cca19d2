package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/agrocomercio-api/internal/application/dto"
	"github.com/tu-usuario/agrocomercio-api/internal/application/usecase"
	"github.com/tu-usuario/agrocomercio-api/internal/domain"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

func ptr[T any](v T) *T { return &v }

// ───────────────────────────────── fakes ────────────────────────────────────

type memProductoRepo struct {
	items  map[int64]entity.Producto
	nextID int64
}

func newMemProductoRepo(productos ...entity.Producto) *memProductoRepo {
	r := &memProductoRepo{items: make(map[int64]entity.Producto)}
	for _, p := range productos {
		r.items[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *memProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = *p
	return nil
}

func (r *memProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductoRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Producto, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductoRepo) List(_ context.Context) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.items))
	for id := range r.items {
		p := r.items[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *memProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	existente := r.items[p.ID]
	actualizado := *p
	actualizado.StockDisponible = existente.StockDisponible
	r.items[p.ID] = actualizado
	return nil
}

func (r *memProductoRepo) UpdateStock(_ context.Context, id int64, stock decimal.Decimal) error {
	p := r.items[id]
	p.StockDisponible = stock
	r.items[id] = p
	return nil
}

func (r *memProductoRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type memCategoriaRepo struct {
	items map[int64]entity.CategoriaProducto
}

func newMemCategoriaRepo(categorias ...entity.CategoriaProducto) *memCategoriaRepo {
	r := &memCategoriaRepo{items: make(map[int64]entity.CategoriaProducto)}
	for _, c := range categorias {
		r.items[c.ID] = c
	}
	return r
}

func (r *memCategoriaRepo) Create(_ context.Context, c *entity.CategoriaProducto) error {
	c.ID = int64(len(r.items) + 1)
	r.items[c.ID] = *c
	return nil
}

func (r *memCategoriaRepo) GetByID(_ context.Context, id int64) (*entity.CategoriaProducto, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCategoriaRepo) List(_ context.Context) ([]*entity.CategoriaProducto, error) {
	out := make([]*entity.CategoriaProducto, 0, len(r.items))
	for id := range r.items {
		c := r.items[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *memCategoriaRepo) Update(_ context.Context, c *entity.CategoriaProducto) error {
	r.items[c.ID] = *c
	return nil
}

func (r *memCategoriaRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

var (
	_ repository.ProductoRepository  = (*memProductoRepo)(nil)
	_ repository.CategoriaRepository = (*memCategoriaRepo)(nil)
)

const categoriaTropicalID int64 = 1

func buildProductoUC(productos ...entity.Producto) (*usecase.ProductoUseCase, *memProductoRepo) {
	repo := newMemProductoRepo(productos...)
	categorias := newMemCategoriaRepo(entity.CategoriaProducto{ID: categoriaTropicalID, Nombre: "Tropicales"})
	return usecase.NewProductoUseCase(repo, categorias), repo
}

// ──────────────────────────────────── create ────────────────────────────────

func TestProductoUseCase_Create(t *testing.T) {
	uc, _ := buildProductoUC()

	out, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		Nombre:           "Plátano",
		Tipo:             entity.ProductoTipoFruta,
		PrecioReferencia: decimal.RequireFromString("0.80"),
		StockDisponible:  decimal.NewFromInt(100),
		CategoriaID:      ptr(categoriaTropicalID),
	})

	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "kg", out.UnidadMedida, "sin unidad explícita se asume kg")
	assert.True(t, out.StockDisponible.Equal(decimal.NewFromInt(100)))
}

func TestProductoUseCase_CreatePrecioNoPositivo(t *testing.T) {
	uc, _ := buildProductoUC()

	_, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		Nombre:           "Mango",
		Tipo:             entity.ProductoTipoFruta,
		PrecioReferencia: decimal.Zero,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductoUseCase_CreateStockNegativo(t *testing.T) {
	uc, _ := buildProductoUC()

	_, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		Nombre:           "Mango",
		Tipo:             entity.ProductoTipoFruta,
		PrecioReferencia: decimal.NewFromInt(1),
		StockDisponible:  decimal.NewFromInt(-5),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductoUseCase_CreateCategoriaInexistente(t *testing.T) {
	uc, _ := buildProductoUC()

	_, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		Nombre:           "Mango",
		Tipo:             entity.ProductoTipoFruta,
		PrecioReferencia: decimal.NewFromInt(1),
		CategoriaID:      ptr(int64(999)),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────── list con filtro ────────────────────────────

func TestProductoUseCase_ListFiltraSinAcentos(t *testing.T) {
	uc, _ := buildProductoUC(
		entity.Producto{ID: 1, Nombre: "Plátano", Tipo: entity.ProductoTipoFruta, UnidadMedida: "kg", PrecioReferencia: decimal.NewFromInt(1)},
		entity.Producto{ID: 2, Nombre: "Brócoli", Tipo: entity.ProductoTipoVerdura, UnidadMedida: "kg", PrecioReferencia: decimal.NewFromInt(2)},
	)

	// "platano" sin tilde debe encontrar "Plátano"
	out, err := uc.List(context.Background(), "platano")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Plátano", out[0].Nombre)

	todos, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, todos, 2, "sin filtro se listan todos")
}

// ──────────────────────────────────── update ────────────────────────────────

func TestProductoUseCase_UpdateNoTocaStock(t *testing.T) {
	uc, repo := buildProductoUC(entity.Producto{
		ID:               1,
		Nombre:           "Plátano",
		Tipo:             entity.ProductoTipoFruta,
		UnidadMedida:     "kg",
		PrecioReferencia: decimal.NewFromInt(1),
		StockDisponible:  decimal.NewFromInt(80),
	})

	out, err := uc.Update(context.Background(), 1, dto.UpdateProductoRequest{
		Nombre:           ptr("Plátano orgánico"),
		PrecioReferencia: ptr(decimal.RequireFromString("1.50")),
	})

	require.NoError(t, err)
	assert.Equal(t, "Plátano orgánico", out.Nombre)

	guardado, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, guardado.StockDisponible.Equal(decimal.NewFromInt(80)),
		"el update genérico no debe modificar el stock")
}

func TestProductoUseCase_UpdateInexistente(t *testing.T) {
	uc, _ := buildProductoUC()

	out, err := uc.Update(context.Background(), 999, dto.UpdateProductoRequest{Nombre: ptr("X")})

	require.NoError(t, err)
	assert.Nil(t, out, "un producto inexistente devuelve nil sin error")
}

func TestProductoUseCase_DeleteInexistente(t *testing.T) {
	uc, _ := buildProductoUC()

	err := uc.Delete(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
