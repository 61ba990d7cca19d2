package trade_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/entity"
	"github.com/tu-usuario/agrocomercio-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Devuelven copias de las
// entidades para imitar a una base de datos real: mutar el resultado de un
// GetByID no debe alterar lo almacenado.

func ptr[T any](v T) *T { return &v }

// ────────────────────────────── datos maestros ──────────────────────────────

type fakePaisRepo struct {
	items map[int64]entity.Pais
}

func newFakePaisRepo(paises ...entity.Pais) *fakePaisRepo {
	r := &fakePaisRepo{items: make(map[int64]entity.Pais)}
	for _, p := range paises {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakePaisRepo) Create(_ context.Context, p *entity.Pais) error {
	p.ID = int64(len(r.items) + 1)
	r.items[p.ID] = *p
	return nil
}

func (r *fakePaisRepo) GetByID(_ context.Context, id int64) (*entity.Pais, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePaisRepo) List(_ context.Context) ([]*entity.Pais, error) {
	out := make([]*entity.Pais, 0, len(r.items))
	for id := range r.items {
		p := r.items[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakePaisRepo) Update(_ context.Context, p *entity.Pais) error {
	r.items[p.ID] = *p
	return nil
}

func (r *fakePaisRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type fakeClienteRepo struct {
	items map[int64]entity.Cliente
}

func newFakeClienteRepo(clientes ...entity.Cliente) *fakeClienteRepo {
	r := &fakeClienteRepo{items: make(map[int64]entity.Cliente)}
	for _, c := range clientes {
		r.items[c.ID] = c
	}
	return r
}

func (r *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	c.ID = int64(len(r.items) + 1)
	r.items[c.ID] = *c
	return nil
}

func (r *fakeClienteRepo) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeClienteRepo) List(_ context.Context) ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(r.items))
	for id := range r.items {
		c := r.items[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeClienteRepo) Update(_ context.Context, c *entity.Cliente) error {
	r.items[c.ID] = *c
	return nil
}

func (r *fakeClienteRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type fakeProveedorRepo struct {
	items map[int64]entity.Proveedor
}

func newFakeProveedorRepo(proveedores ...entity.Proveedor) *fakeProveedorRepo {
	r := &fakeProveedorRepo{items: make(map[int64]entity.Proveedor)}
	for _, p := range proveedores {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakeProveedorRepo) Create(_ context.Context, p *entity.Proveedor) error {
	p.ID = int64(len(r.items) + 1)
	r.items[p.ID] = *p
	return nil
}

func (r *fakeProveedorRepo) GetByID(_ context.Context, id int64) (*entity.Proveedor, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProveedorRepo) List(_ context.Context) ([]*entity.Proveedor, error) {
	out := make([]*entity.Proveedor, 0, len(r.items))
	for id := range r.items {
		p := r.items[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakeProveedorRepo) Update(_ context.Context, p *entity.Proveedor) error {
	r.items[p.ID] = *p
	return nil
}

func (r *fakeProveedorRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type fakePuertoRepo struct {
	items map[int64]entity.Puerto
}

func newFakePuertoRepo(puertos ...entity.Puerto) *fakePuertoRepo {
	r := &fakePuertoRepo{items: make(map[int64]entity.Puerto)}
	for _, p := range puertos {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakePuertoRepo) Create(_ context.Context, p *entity.Puerto) error {
	p.ID = int64(len(r.items) + 1)
	r.items[p.ID] = *p
	return nil
}

func (r *fakePuertoRepo) GetByID(_ context.Context, id int64) (*entity.Puerto, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePuertoRepo) List(_ context.Context) ([]*entity.Puerto, error) {
	out := make([]*entity.Puerto, 0, len(r.items))
	for id := range r.items {
		p := r.items[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakePuertoRepo) Update(_ context.Context, p *entity.Puerto) error {
	r.items[p.ID] = *p
	return nil
}

func (r *fakePuertoRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

// ─────────────────────────── productos y operaciones ────────────────────────

type fakeProductoRepo struct {
	items map[int64]entity.Producto
}

func newFakeProductoRepo(productos ...entity.Producto) *fakeProductoRepo {
	r := &fakeProductoRepo{items: make(map[int64]entity.Producto)}
	for _, p := range productos {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	p.ID = int64(len(r.items) + 1)
	r.items[p.ID] = *p
	return nil
}

func (r *fakeProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductoRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Producto, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductoRepo) List(_ context.Context) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.items))
	for id := range r.items {
		p := r.items[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	existente := r.items[p.ID]
	actualizado := *p
	actualizado.StockDisponible = existente.StockDisponible
	r.items[p.ID] = actualizado
	return nil
}

func (r *fakeProductoRepo) UpdateStock(_ context.Context, id int64, stock decimal.Decimal) error {
	p := r.items[id]
	p.StockDisponible = stock
	r.items[id] = p
	return nil
}

func (r *fakeProductoRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

// stockDe lectura directa del stock almacenado, para aserciones.
func (r *fakeProductoRepo) stockDe(id int64) decimal.Decimal {
	return r.items[id].StockDisponible
}

type fakeOperacionRepo struct {
	items  map[int64]entity.Operacion
	nextID int64
}

func newFakeOperacionRepo(operaciones ...entity.Operacion) *fakeOperacionRepo {
	r := &fakeOperacionRepo{items: make(map[int64]entity.Operacion), nextID: 100}
	for _, op := range operaciones {
		r.items[op.ID] = op
	}
	return r
}

func (r *fakeOperacionRepo) Create(_ context.Context, o *entity.Operacion) error {
	r.nextID++
	o.ID = r.nextID
	r.items[o.ID] = *o
	return nil
}

func (r *fakeOperacionRepo) GetByID(_ context.Context, id int64) (*entity.Operacion, error) {
	op, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &op, nil
}

func (r *fakeOperacionRepo) List(_ context.Context) ([]*entity.Operacion, error) {
	out := make([]*entity.Operacion, 0, len(r.items))
	for id := range r.items {
		op := r.items[id]
		out = append(out, &op)
	}
	return out, nil
}

func (r *fakeOperacionRepo) Update(_ context.Context, o *entity.Operacion) error {
	existente := r.items[o.ID]
	actualizado := *o
	actualizado.CostoTotal = existente.CostoTotal
	r.items[o.ID] = actualizado
	return nil
}

func (r *fakeOperacionRepo) UpdateCostoTotal(_ context.Context, id int64, total decimal.Decimal) error {
	op := r.items[id]
	op.CostoTotal = total
	r.items[id] = op
	return nil
}

func (r *fakeOperacionRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

// costoDe lectura directa del costo total almacenado, para aserciones.
func (r *fakeOperacionRepo) costoDe(id int64) decimal.Decimal {
	return r.items[id].CostoTotal
}

type fakeDetalleRepo struct {
	items  map[int64]entity.DetalleOperacion
	nextID int64
}

func newFakeDetalleRepo(detalles ...entity.DetalleOperacion) *fakeDetalleRepo {
	r := &fakeDetalleRepo{items: make(map[int64]entity.DetalleOperacion), nextID: 500}
	for _, d := range detalles {
		r.items[d.ID] = d
		if d.ID > r.nextID {
			r.nextID = d.ID
		}
	}
	return r
}

func (r *fakeDetalleRepo) Create(_ context.Context, d *entity.DetalleOperacion) error {
	r.nextID++
	d.ID = r.nextID
	r.items[d.ID] = *d
	return nil
}

func (r *fakeDetalleRepo) GetByID(_ context.Context, id int64) (*entity.DetalleOperacion, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *fakeDetalleRepo) List(_ context.Context) ([]*entity.DetalleOperacion, error) {
	out := make([]*entity.DetalleOperacion, 0, len(r.items))
	for id := range r.items {
		d := r.items[id]
		out = append(out, &d)
	}
	return out, nil
}

func (r *fakeDetalleRepo) ListByOperacion(_ context.Context, operacionID int64) ([]*entity.DetalleOperacion, error) {
	var out []*entity.DetalleOperacion
	for id := range r.items {
		if r.items[id].OperacionID == operacionID {
			d := r.items[id]
			out = append(out, &d)
		}
	}
	return out, nil
}

func (r *fakeDetalleRepo) Update(_ context.Context, d *entity.DetalleOperacion) error {
	existente := r.items[d.ID]
	existente.Cantidad = d.Cantidad
	existente.PrecioUnitario = d.PrecioUnitario
	r.items[d.ID] = existente
	return nil
}

func (r *fakeDetalleRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

func (r *fakeDetalleRepo) SumTotalByOperacion(_ context.Context, operacionID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, d := range r.items {
		if d.OperacionID == operacionID {
			total = total.Add(d.Cantidad.Mul(d.PrecioUnitario))
		}
	}
	return total, nil
}

func (r *fakeDetalleRepo) CountByOperacion(_ context.Context, operacionID int64) (int, error) {
	count := 0
	for _, d := range r.items {
		if d.OperacionID == operacionID {
			count++
		}
	}
	return count, nil
}

// ──────────────────────────────── transacciones ─────────────────────────────

// fakeTxRunner ejecuta fn directamente sobre los fakes, sin transacción real.
// Las validaciones del caso de uso corren antes de cualquier escritura, así
// que los escenarios de rechazo siguen dejando el estado intacto.
type fakeTxRunner struct {
	detalles   *fakeDetalleRepo
	productos  *fakeProductoRepo
	operacions *fakeOperacionRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	detalleRepo repository.DetalleRepository,
	productoRepo repository.ProductoRepository,
	operacionRepo repository.OperacionRepository,
) error) error {
	return fn(t.detalles, t.productos, t.operacions)
}

// compile-time: los fakes implementan los puertos reales
var (
	_ repository.PaisRepository      = (*fakePaisRepo)(nil)
	_ repository.ClienteRepository   = (*fakeClienteRepo)(nil)
	_ repository.ProveedorRepository = (*fakeProveedorRepo)(nil)
	_ repository.PuertoRepository    = (*fakePuertoRepo)(nil)
	_ repository.ProductoRepository  = (*fakeProductoRepo)(nil)
	_ repository.OperacionRepository = (*fakeOperacionRepo)(nil)
	_ repository.DetalleRepository   = (*fakeDetalleRepo)(nil)
)
