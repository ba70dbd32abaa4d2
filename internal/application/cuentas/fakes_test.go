package cuentas_test

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lastonitas/cerveceria-api/internal/application/cuentas"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// memoria es el almacén compartido de los fakes. El TxRunner de test toma un
// snapshot antes de fn y lo restaura si fn falla, emulando el rollback.
type memoria struct {
	cuentas    map[int64]*entity.Cuenta
	detalles   map[int64][]entity.CuentaDetalle
	mesas      map[int64]*entity.Mesa
	sigCuenta  int64
	sigDetalle int64

	// failpoint: InsertDetalle falla para este producto (0 = desactivado)
	fallaProductoID int64
}

func nuevaMemoria() *memoria {
	return &memoria{
		cuentas:  make(map[int64]*entity.Cuenta),
		detalles: make(map[int64][]entity.CuentaDetalle),
		mesas:    make(map[int64]*entity.Mesa),
	}
}

func (m *memoria) agregarMesa(id int64, numero int, estado string) {
	m.mesas[id] = &entity.Mesa{ID: id, NumeroMesa: numero, Estado: estado}
}

func (m *memoria) clonar() *memoria {
	c := nuevaMemoria()
	c.sigCuenta = m.sigCuenta
	c.sigDetalle = m.sigDetalle
	c.fallaProductoID = m.fallaProductoID
	for id, cu := range m.cuentas {
		copia := *cu
		c.cuentas[id] = &copia
	}
	for id, dets := range m.detalles {
		c.detalles[id] = append([]entity.CuentaDetalle(nil), dets...)
	}
	for id, me := range m.mesas {
		copia := *me
		c.mesas[id] = &copia
	}
	return c
}

func (m *memoria) restaurar(desde *memoria) {
	m.cuentas = desde.cuentas
	m.detalles = desde.detalles
	m.mesas = desde.mesas
	m.sigCuenta = desde.sigCuenta
	m.sigDetalle = desde.sigDetalle
}

// ── fakeCuentaRepo ────────────────────────────────────────────────────────────

type fakeCuentaRepo struct{ m *memoria }

var _ repository.CuentaRepository = (*fakeCuentaRepo)(nil)

func (r *fakeCuentaRepo) Create(c *entity.Cuenta) error {
	r.m.sigCuenta++
	c.ID = r.m.sigCuenta
	copia := *c
	r.m.cuentas[c.ID] = &copia
	return nil
}

func (r *fakeCuentaRepo) GetByID(id int64) (*entity.Cuenta, error) {
	c, ok := r.m.cuentas[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	if copia.MesaID != nil {
		if mesa, ok := r.m.mesas[*copia.MesaID]; ok {
			n := mesa.NumeroMesa
			copia.NumeroMesa = &n
		}
	}
	return &copia, nil
}

func (r *fakeCuentaRepo) ListPendientes(limit, offset int) ([]*entity.Cuenta, error) {
	var list []*entity.Cuenta
	for _, c := range r.m.cuentas {
		if c.Estado == entity.CuentaPendiente {
			copia := *c
			list = append(list, &copia)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return recortar(list, limit, offset), nil
}

func (r *fakeCuentaRepo) CountPendientes() (int, error) {
	n := 0
	for _, c := range r.m.cuentas {
		if c.Estado == entity.CuentaPendiente {
			n++
		}
	}
	return n, nil
}

func (r *fakeCuentaRepo) ListHistorial(f repository.FiltroHistorial, limit, offset int) ([]*entity.Cuenta, error) {
	var list []*entity.Cuenta
	for _, c := range r.m.cuentas {
		if !coincideHistorial(c, f) {
			continue
		}
		copia := *c
		list = append(list, &copia)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return recortar(list, limit, offset), nil
}

func (r *fakeCuentaRepo) CountHistorial(f repository.FiltroHistorial) (int, error) {
	n := 0
	for _, c := range r.m.cuentas {
		if coincideHistorial(c, f) {
			n++
		}
	}
	return n, nil
}

func coincideHistorial(c *entity.Cuenta, f repository.FiltroHistorial) bool {
	if f.Filtrar && (c.FechaCreado.Before(f.Desde) || !c.FechaCreado.Before(f.Hasta)) {
		return false
	}
	if f.Estado != "" && f.Estado != "todo" && c.Estado != f.Estado {
		return false
	}
	return true
}

func (r *fakeCuentaRepo) ListDetalles(cuentaID int64) ([]*entity.CuentaDetalle, error) {
	dets := r.m.detalles[cuentaID]
	out := make([]*entity.CuentaDetalle, 0, len(dets))
	for i := range dets {
		copia := dets[i]
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeCuentaRepo) InsertDetalle(d *entity.CuentaDetalle) error {
	if r.m.fallaProductoID != 0 && d.ProductoID == r.m.fallaProductoID {
		return errors.New("insert detalle: violación de clave foránea")
	}
	r.m.sigDetalle++
	d.ID = r.m.sigDetalle
	r.m.detalles[d.CuentaID] = append(r.m.detalles[d.CuentaID], *d)
	return nil
}

func (r *fakeCuentaRepo) DeleteDetalles(cuentaID int64) error {
	delete(r.m.detalles, cuentaID)
	return nil
}

func (r *fakeCuentaRepo) ActualizarHeaderPendiente(id int64, cliente, tipoCuenta string, mesaID *int64) (bool, error) {
	c, ok := r.m.cuentas[id]
	if !ok || c.Estado != entity.CuentaPendiente {
		return false, nil
	}
	c.Cliente = cliente
	c.TipoCuenta = tipoCuenta
	c.MesaID = mesaID
	return true, nil
}

func (r *fakeCuentaRepo) ActualizarTotal(id int64, total decimal.Decimal) error {
	if c, ok := r.m.cuentas[id]; ok {
		c.Total = total
	}
	return nil
}

func (r *fakeCuentaRepo) MarcarPagada(id int64) (*int64, bool, error) {
	c, ok := r.m.cuentas[id]
	if !ok || c.Estado != entity.CuentaPendiente {
		return nil, false, nil
	}
	c.Estado = entity.CuentaPagado
	return c.MesaID, true, nil
}

func (r *fakeCuentaRepo) CountPendientesPorMesa(mesaID int64) (int, error) {
	n := 0
	for _, c := range r.m.cuentas {
		if c.Estado == entity.CuentaPendiente && c.MesaID != nil && *c.MesaID == mesaID {
			n++
		}
	}
	return n, nil
}

func recortar(list []*entity.Cuenta, limit, offset int) []*entity.Cuenta {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list
}

// ── fakeMesaRepo ──────────────────────────────────────────────────────────────

type fakeMesaRepo struct{ m *memoria }

var _ repository.MesaRepository = (*fakeMesaRepo)(nil)

func (r *fakeMesaRepo) Create(mesa *entity.Mesa) error {
	id := int64(len(r.m.mesas) + 1)
	mesa.ID = id
	copia := *mesa
	r.m.mesas[id] = &copia
	return nil
}

func (r *fakeMesaRepo) GetByID(id int64) (*entity.Mesa, error) {
	mesa, ok := r.m.mesas[id]
	if !ok {
		return nil, nil
	}
	copia := *mesa
	return &copia, nil
}

func (r *fakeMesaRepo) GetByNumero(numero int) (*entity.Mesa, error) {
	for _, mesa := range r.m.mesas {
		if mesa.NumeroMesa == numero {
			copia := *mesa
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeMesaRepo) List(estado string, limit, offset int) ([]*entity.Mesa, error) {
	var list []*entity.Mesa
	for _, mesa := range r.m.mesas {
		if estado == "" || mesa.Estado == estado {
			copia := *mesa
			list = append(list, &copia)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].NumeroMesa < list[j].NumeroMesa })
	return list, nil
}

func (r *fakeMesaRepo) Count(estado string) (int, error) {
	list, _ := r.List(estado, 0, 0)
	return len(list), nil
}

func (r *fakeMesaRepo) Update(mesa *entity.Mesa) error {
	copia := *mesa
	r.m.mesas[mesa.ID] = &copia
	return nil
}

func (r *fakeMesaRepo) Delete(id int64) error {
	delete(r.m.mesas, id)
	return nil
}

func (r *fakeMesaRepo) Reconciliar() error {
	for id, mesa := range r.m.mesas {
		ocupada := false
		for _, c := range r.m.cuentas {
			if c.Estado == entity.CuentaPendiente && c.MesaID != nil && *c.MesaID == id {
				ocupada = true
				break
			}
		}
		if ocupada {
			mesa.Estado = entity.MesaOcupada
		} else {
			mesa.Estado = entity.MesaDisponible
		}
	}
	return nil
}

func (r *fakeMesaRepo) GetForUpdate(id int64) (*entity.Mesa, error) {
	return r.GetByID(id)
}

func (r *fakeMesaRepo) ActualizarEstado(id int64, estado string) error {
	if mesa, ok := r.m.mesas[id]; ok {
		mesa.Estado = estado
	}
	return nil
}

// ── fakeTx / fakeRecibos ──────────────────────────────────────────────────────

// fakeTx ejecuta fn sobre la memoria compartida y restaura el snapshot si fn
// devuelve error, emulando el rollback de la transacción real.
type fakeTx struct{ m *memoria }

var _ cuentas.TxRunner = (*fakeTx)(nil)

func (t *fakeTx) Run(_ context.Context, fn func(repository.CuentaRepository, repository.MesaRepository) error) error {
	snapshot := t.m.clonar()
	err := fn(&fakeCuentaRepo{m: t.m}, &fakeMesaRepo{m: t.m})
	if err != nil {
		t.m.restaurar(snapshot)
		return err
	}
	return nil
}

type fakeRecibos struct{}

var _ cuentas.GeneradorRecibo = (*fakeRecibos)(nil)

func (fakeRecibos) GenerarRecibo(_ context.Context, _ *entity.Cuenta, _ []*entity.CuentaDetalle) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}
