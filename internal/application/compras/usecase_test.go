package compras_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastonitas/cerveceria-api/internal/application/compras"
	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// almacenCompras es el estado compartido de los fakes: compras, detalles y el
// stock por producto que acredita la liquidación.
type almacenCompras struct {
	compras    map[int64]*entity.Compra
	detalles   map[int64][]entity.CompraDetalle
	stock      map[int64]int
	sigCompra  int64
	sigDetalle int64
}

func nuevoAlmacen() *almacenCompras {
	return &almacenCompras{
		compras:  make(map[int64]*entity.Compra),
		detalles: make(map[int64][]entity.CompraDetalle),
		stock:    make(map[int64]int),
	}
}

type fakeCompraRepo struct{ a *almacenCompras }

var _ repository.CompraRepository = (*fakeCompraRepo)(nil)

func (r *fakeCompraRepo) Create(c *entity.Compra) error {
	r.a.sigCompra++
	c.ID = r.a.sigCompra
	copia := *c
	r.a.compras[c.ID] = &copia
	return nil
}

func (r *fakeCompraRepo) GetByID(id int64) (*entity.Compra, error) {
	c, ok := r.a.compras[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (r *fakeCompraRepo) List(limit, offset int) ([]*entity.Compra, error) {
	var list []*entity.Compra
	for _, c := range r.a.compras {
		copia := *c
		list = append(list, &copia)
	}
	return list, nil
}

func (r *fakeCompraRepo) Count() (int, error) {
	return len(r.a.compras), nil
}

func (r *fakeCompraRepo) InsertDetalle(d *entity.CompraDetalle) error {
	r.a.sigDetalle++
	d.ID = r.a.sigDetalle
	r.a.detalles[d.CompraID] = append(r.a.detalles[d.CompraID], *d)
	return nil
}

func (r *fakeCompraRepo) ListDetalles(compraID int64) ([]*entity.CompraDetalle, error) {
	dets := r.a.detalles[compraID]
	out := make([]*entity.CompraDetalle, 0, len(dets))
	for i := range dets {
		copia := dets[i]
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeCompraRepo) MarcarPagada(id int64) (bool, error) {
	c, ok := r.a.compras[id]
	if !ok || c.Estado != entity.CompraPendiente {
		return false, nil
	}
	c.Estado = entity.CompraPagado
	return true, nil
}

// fakeStockRepo solo implementa de verdad IncrementarStock; el resto del
// puerto no participa en la liquidación de compras.
type fakeStockRepo struct{ a *almacenCompras }

var _ repository.ProductoRepository = (*fakeStockRepo)(nil)

func (r *fakeStockRepo) IncrementarStock(id int64, cantidad int) error {
	r.a.stock[id] += cantidad
	return nil
}

func (r *fakeStockRepo) Create(*entity.Producto) error                       { return nil }
func (r *fakeStockRepo) GetByID(int64) (*entity.Producto, error)             { return nil, nil }
func (r *fakeStockRepo) ListActivos(string, int, int) ([]*entity.Producto, error) {
	return nil, nil
}
func (r *fakeStockRepo) CountActivos(string) (int, error)                    { return 0, nil }
func (r *fakeStockRepo) ListTodosActivos() ([]*entity.Producto, error)       { return nil, nil }
func (r *fakeStockRepo) Update(int64, repository.CamposProducto) (*entity.Producto, error) {
	return nil, nil
}
func (r *fakeStockRepo) SetActivo(int64, bool) (*entity.Producto, error)     { return nil, nil }
func (r *fakeStockRepo) ListStockCritico(int) ([]*entity.Producto, error)    { return nil, nil }

type fakeTxCompras struct{ a *almacenCompras }

var _ compras.TxRunner = (*fakeTxCompras)(nil)

func (t *fakeTxCompras) RunCompras(_ context.Context, fn func(repository.CompraRepository, repository.ProductoRepository) error) error {
	return fn(&fakeCompraRepo{a: t.a}, &fakeStockRepo{a: t.a})
}

func nuevoModulo(a *almacenCompras) *compras.UseCase {
	return compras.NewUseCase(&fakeTxCompras{a: a}, &fakeCompraRepo{a: a})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func lineaCompra(productoID int64, cantidad int, precioCompra string) dto.DetalleCompraRequest {
	return dto.DetalleCompraRequest{
		ProductoID:         productoID,
		CantidadVendida:    cantidad,
		PrecioCompraActual: dec(precioCompra),
		PrecioVenta:        dec("2.50"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

// El total de la compra es la suma de cantidad × precio de compra de cada
// línea; lo que mande el cliente en total se ignora.
func TestCrear_TotalDesdeLasLineas(t *testing.T) {
	a := nuevoAlmacen()
	uc := nuevoModulo(a)

	// 24 × $0.85 + 12 × $1.10 = $33.60
	id, err := uc.Crear(context.Background(), dto.CrearCompraRequest{
		Proveedor: "Distribuidora La Constancia",
		Direccion: "San Salvador",
		Total:     dec("999.99"),
		Detalles: []dto.DetalleCompraRequest{
			lineaCompra(1, 24, "0.85"),
			lineaCompra(2, 12, "1.10"),
		},
	})
	require.NoError(t, err)

	compra, err := uc.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, compra)
	assert.True(t, compra.Total.Equal(dec("33.60")),
		"total esperado 33.60, fue %s", compra.Total)
	assert.Equal(t, entity.CompraPendiente, compra.Estado)
	assert.Equal(t, 2, compra.TotalDetalles)
}

func TestCrear_SinProveedor_RetornaEntradaInvalida(t *testing.T) {
	uc := nuevoModulo(nuevoAlmacen())

	_, err := uc.Crear(context.Background(), dto.CrearCompraRequest{
		Detalles: []dto.DetalleCompraRequest{lineaCompra(1, 1, "0.85")},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCrear_EstadoDesconocido_RetornaEntradaInvalida(t *testing.T) {
	uc := nuevoModulo(nuevoAlmacen())

	_, err := uc.Crear(context.Background(), dto.CrearCompraRequest{
		Proveedor: "Proveedor",
		Estado:    "cancelado",
		Detalles:  []dto.DetalleCompraRequest{lineaCompra(1, 1, "0.85")},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCrear_CantidadCero_RetornaEntradaInvalida(t *testing.T) {
	uc := nuevoModulo(nuevoAlmacen())

	_, err := uc.Crear(context.Background(), dto.CrearCompraRequest{
		Proveedor: "Proveedor",
		Detalles:  []dto.DetalleCompraRequest{lineaCompra(1, 0, "0.85")},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagar
// ──────────────────────────────────────────────────────────────────────────────

// Liquidar la compra acredita el stock de cada línea exactamente una vez;
// un segundo intento se rechaza sin volver a tocar el inventario.
func TestPagar_AcreditaStockUnaSolaVez(t *testing.T) {
	a := nuevoAlmacen()
	uc := nuevoModulo(a)

	id, err := uc.Crear(context.Background(), dto.CrearCompraRequest{
		Proveedor: "Distribuidora La Constancia",
		Detalles: []dto.DetalleCompraRequest{
			lineaCompra(1, 24, "0.85"),
			lineaCompra(2, 12, "1.10"),
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Pagar(context.Background(), id))
	assert.Equal(t, 24, a.stock[1])
	assert.Equal(t, 12, a.stock[2])
	assert.Equal(t, entity.CompraPagado, a.compras[id].Estado)

	err = uc.Pagar(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrCompraNoLiquidable)
	assert.Equal(t, 24, a.stock[1], "el segundo pago no debe duplicar el stock")
	assert.Equal(t, 12, a.stock[2], "el segundo pago no debe duplicar el stock")
}

func TestPagar_CompraInexistente_RetornaNoLiquidable(t *testing.T) {
	uc := nuevoModulo(nuevoAlmacen())

	err := uc.Pagar(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrCompraNoLiquidable)
}

// Una compra creada ya pagada acreditó su stock por fuera; pagarla de nuevo
// debe rechazarse.
func TestPagar_CompraCreadaPagada_RetornaNoLiquidable(t *testing.T) {
	a := nuevoAlmacen()
	uc := nuevoModulo(a)

	id, err := uc.Crear(context.Background(), dto.CrearCompraRequest{
		Proveedor: "Proveedor",
		Estado:    entity.CompraPagado,
		Detalles:  []dto.DetalleCompraRequest{lineaCompra(1, 6, "0.85")},
	})
	require.NoError(t, err)

	err = uc.Pagar(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrCompraNoLiquidable)
	assert.Zero(t, a.stock[1])
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestList_Pagina(t *testing.T) {
	a := nuevoAlmacen()
	uc := nuevoModulo(a)

	for i := 0; i < 3; i++ {
		_, err := uc.Crear(context.Background(), dto.CrearCompraRequest{
			Proveedor: "Proveedor",
			Detalles:  []dto.DetalleCompraRequest{lineaCompra(1, 1, "0.85")},
		})
		require.NoError(t, err)
	}

	list, pagination, err := uc.List(dto.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, 3, pagination.TotalItems)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestGetByID_Inexistente_RetornaNil(t *testing.T) {
	uc := nuevoModulo(nuevoAlmacen())

	compra, err := uc.GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, compra)
}
