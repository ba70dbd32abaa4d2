package cuentas_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastonitas/cerveceria-api/internal/application/cuentas"
	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
)

func nuevoMotor(m *memoria) *cuentas.UseCase {
	return cuentas.NewUseCase(&fakeTx{m: m}, &fakeCuentaRepo{m: m}, &fakeMesaRepo{m: m}, fakeRecibos{})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func linea(productoID int64, cantidad int, precioVenta string) dto.DetalleCuentaRequest {
	return dto.DetalleCuentaRequest{
		ProductoID:         productoID,
		CantidadVendida:    cantidad,
		PrecioCompraActual: dec("1.00"),
		PrecioVenta:        dec(precioVenta),
	}
}

func crearCuentaEnMesa(t *testing.T, uc *cuentas.UseCase, mesaID int64, detalles ...dto.DetalleCuentaRequest) int64 {
	t.Helper()
	id, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    fmt.Sprintf("Mesa %d", mesaID),
		TipoCuenta: "consumo",
		MesaID:     &mesaID,
		Detalles:   detalles,
	})
	require.NoError(t, err)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: abrir cuenta sobre mesa libre debe ocupar la mesa,
// dejar la cuenta pendiente y calcular el total desde los detalles.
func TestCrear_MesaLibre_OcupaYCalculaTotal(t *testing.T) {
	m := nuevaMemoria()
	m.agregarMesa(1, 1, entity.MesaDisponible)
	uc := nuevoMotor(m)

	// 2 × $2.50 + 1 × $5.00 = $10.00
	id := crearCuentaEnMesa(t, uc, 1,
		linea(10, 2, "2.50"),
		linea(11, 1, "5.00"),
	)

	cuenta, err := uc.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, cuenta)

	assert.Equal(t, entity.CuentaPendiente, cuenta.Estado)
	assert.True(t, cuenta.Total.Equal(dec("10.00")),
		"total debe ser 10.00, fue %s", cuenta.Total)
	assert.Len(t, cuenta.Detalles, 2)

	mesa := m.mesas[1]
	assert.Equal(t, entity.MesaOcupada, mesa.Estado, "abrir cuenta debe ocupar la mesa")
}

// El total enviado por el cliente se ignora: manda la suma de las líneas.
func TestCrear_IgnoraTotalDelCliente(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	id, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    "Rosa",
		Total:      dec("999.99"),
		TipoCuenta: "para_llevar",
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 3, "2.50")},
	})
	require.NoError(t, err)

	cuenta, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.True(t, cuenta.Total.Equal(dec("7.50")),
		"el total del cliente no debe persistirse; fue %s", cuenta.Total)
}

func TestCrear_MesaInexistente_RetornaReferenciaInvalida(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	mesaID := int64(99)
	_, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    "Pedro",
		TipoCuenta: "consumo",
		MesaID:     &mesaID,
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
	})

	assert.ErrorIs(t, err, domain.ErrReferenciaInvalida)
	assert.Empty(t, m.cuentas, "no debe quedar cuenta creada tras el rollback")
}

func TestCrear_LineaInvalida_RetornaEntradaInvalida(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	_, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    "Pedro",
		TipoCuenta: "consumo",
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 0, "2.50")},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagar
// ──────────────────────────────────────────────────────────────────────────────

// Liquidar dos veces la misma cuenta: el segundo intento debe rechazarse sin
// tocar nada (ni el estado de la cuenta ni el de la mesa).
func TestPagar_SegundoPagoRechazado(t *testing.T) {
	m := nuevaMemoria()
	m.agregarMesa(1, 1, entity.MesaDisponible)
	uc := nuevoMotor(m)
	id := crearCuentaEnMesa(t, uc, 1, linea(10, 2, "2.50"))

	res, err := uc.Pagar(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, res.MesaLiberada, "única cuenta de la mesa: pagarla debe liberarla")
	require.NotNil(t, res.MesaID)
	assert.Equal(t, int64(1), *res.MesaID)

	_, err = uc.Pagar(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrCuentaNoLiquidable)

	assert.Equal(t, entity.CuentaPagado, m.cuentas[id].Estado)
	assert.Equal(t, entity.MesaDisponible, m.mesas[1].Estado,
		"el segundo pago no debe alterar la mesa")
}

func TestPagar_CuentaInexistente_RetornaNoLiquidable(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	_, err := uc.Pagar(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrCuentaNoLiquidable)
}

// Cuenta para llevar: sin mesa no hay nada que liberar.
func TestPagar_SinMesa_NoLiberaNada(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	id, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    "Para llevar",
		TipoCuenta: "para_llevar",
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
	})
	require.NoError(t, err)

	res, err := uc.Pagar(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, res.MesaID)
	assert.False(t, res.MesaLiberada)
}

// Dos cuentas sobre la misma mesa: la mesa se libera únicamente al liquidar
// la última pendiente, sin importar el orden de los pagos.
func TestPagar_DosCuentasMismaMesa_LiberaSoloConLaUltima(t *testing.T) {
	casos := []struct {
		nombre  string
		primero int // índice de la cuenta que se paga primero
	}{
		{"paga primero la cuenta A", 0},
		{"paga primero la cuenta B", 1},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			m := nuevaMemoria()
			m.agregarMesa(1, 1, entity.MesaDisponible)
			uc := nuevoMotor(m)

			ids := []int64{
				crearCuentaEnMesa(t, uc, 1, linea(10, 1, "2.50")),
				crearCuentaEnMesa(t, uc, 1, linea(11, 2, "5.00")),
			}
			require.Equal(t, entity.MesaOcupada, m.mesas[1].Estado)

			primero, segundo := ids[tc.primero], ids[1-tc.primero]

			res, err := uc.Pagar(context.Background(), primero)
			require.NoError(t, err)
			assert.False(t, res.MesaLiberada, "queda otra cuenta pendiente: la mesa sigue ocupada")
			assert.Equal(t, entity.MesaOcupada, m.mesas[1].Estado)

			res, err = uc.Pagar(context.Background(), segundo)
			require.NoError(t, err)
			assert.True(t, res.MesaLiberada, "última cuenta pagada: la mesa debe liberarse")
			assert.Equal(t, entity.MesaDisponible, m.mesas[1].Estado)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Editar
// ──────────────────────────────────────────────────────────────────────────────

// El total debe coincidir con la suma de las líneas tras cada edición
// sucesiva, sin arrastre de errores de redondeo.
func TestEditar_TotalSiempreCoincideConLasLineas(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	id, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    "Mario",
		TipoCuenta: "consumo",
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
	})
	require.NoError(t, err)

	ediciones := []struct {
		detalles []dto.DetalleCuentaRequest
		total    string
	}{
		{[]dto.DetalleCuentaRequest{linea(10, 3, "2.50"), linea(11, 1, "1.75")}, "9.25"},
		{[]dto.DetalleCuentaRequest{linea(12, 7, "0.33")}, "2.31"},
		{nil, "0"}, // vaciar la cuenta es válido
		{[]dto.DetalleCuentaRequest{linea(10, 2, "5.00")}, "10.00"},
	}

	for _, ed := range ediciones {
		out, err := uc.Editar(context.Background(), id, dto.EditarCuentaRequest{
			Cliente:    "Mario",
			TipoCuenta: "consumo",
			Detalles:   ed.detalles,
		})
		require.NoError(t, err)
		assert.True(t, out.Total.Equal(dec(ed.total)),
			"total esperado %s, fue %s", ed.total, out.Total)
		assert.Equal(t, len(ed.detalles), out.Productos)

		cuenta, err := uc.GetByID(id)
		require.NoError(t, err)
		assert.True(t, cuenta.Total.Equal(dec(ed.total)),
			"total persistido esperado %s, fue %s", ed.total, cuenta.Total)
		assert.Len(t, cuenta.Detalles, len(ed.detalles))
	}
}

// Una edición que falla a mitad de los inserts debe dejar la cuenta
// exactamente como estaba: mismas líneas, mismo total.
func TestEditar_FallaParcial_ConservaLineasYTotal(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	id, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    "Lucía",
		TipoCuenta: "consumo",
		Detalles: []dto.DetalleCuentaRequest{
			linea(10, 2, "2.50"),
			linea(11, 1, "5.00"),
		},
	})
	require.NoError(t, err)

	// La segunda línea de la edición apunta a un producto que hace fallar
	// el insert: la primera ya habrá entrado cuando explote.
	m.fallaProductoID = 66
	_, err = uc.Editar(context.Background(), id, dto.EditarCuentaRequest{
		Cliente:    "Lucía",
		TipoCuenta: "consumo",
		Detalles: []dto.DetalleCuentaRequest{
			linea(12, 4, "1.00"),
			linea(66, 1, "3.00"),
		},
	})
	require.Error(t, err)

	cuenta, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.True(t, cuenta.Total.Equal(dec("10.00")),
		"el total previo debe sobrevivir al rollback; fue %s", cuenta.Total)
	require.Len(t, cuenta.Detalles, 2, "las líneas previas deben sobrevivir al rollback")
	assert.Equal(t, int64(10), cuenta.Detalles[0].ProductoID)
	assert.Equal(t, int64(11), cuenta.Detalles[1].ProductoID)
}

func TestEditar_CuentaPagada_RetornaNoEditable(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	id, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    "Ana",
		TipoCuenta: "consumo",
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
	})
	require.NoError(t, err)
	_, err = uc.Pagar(context.Background(), id)
	require.NoError(t, err)

	_, err = uc.Editar(context.Background(), id, dto.EditarCuentaRequest{
		Cliente:    "Ana",
		TipoCuenta: "consumo",
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 5, "2.50")},
	})
	assert.ErrorIs(t, err, domain.ErrCuentaNoEditable)

	cuenta, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.True(t, cuenta.Total.Equal(dec("2.50")), "la cuenta pagada no debe cambiar")
}

func TestEditar_CuentaInexistente_RetornaNoEditable(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	_, err := uc.Editar(context.Background(), 404, dto.EditarCuentaRequest{
		Cliente: "Nadie", TipoCuenta: "consumo",
	})
	assert.ErrorIs(t, err, domain.ErrCuentaNoEditable)
}

// Asignar mesa al editar debe marcarla ocupada.
func TestEditar_AsignaMesa_LaOcupa(t *testing.T) {
	m := nuevaMemoria()
	m.agregarMesa(2, 2, entity.MesaDisponible)
	uc := nuevoMotor(m)

	id, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    "Beto",
		TipoCuenta: "consumo",
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
	})
	require.NoError(t, err)

	mesaID := int64(2)
	_, err = uc.Editar(context.Background(), id, dto.EditarCuentaRequest{
		Cliente:    "Beto",
		TipoCuenta: "consumo",
		MesaID:     &mesaID,
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MesaOcupada, m.mesas[2].Estado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas y recibo
// ──────────────────────────────────────────────────────────────────────────────

func TestListPendientes_ExcluyePagadas(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
			Cliente:    "Cliente",
			TipoCuenta: "consumo",
			Detalles:   []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := uc.Pagar(context.Background(), ids[1])
	require.NoError(t, err)

	list, pagination, err := uc.ListPendientes(dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, pagination.TotalItems)
	for _, c := range list {
		assert.Equal(t, entity.CuentaPendiente, c.Estado)
	}
}

func TestHistorial_PeriodoInvalido_RetornaEntradaInvalida(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	_, _, err := uc.Historial("quincena", "", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestHistorial_EstadoInvalido_RetornaEntradaInvalida(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	_, _, err := uc.Historial("", "cancelado", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestHistorial_FiltraPorEstado(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	id1, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente: "A", TipoCuenta: "consumo",
		Detalles: []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
	})
	require.NoError(t, err)
	_, err = uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente: "B", TipoCuenta: "consumo",
		Detalles: []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
	})
	require.NoError(t, err)
	_, err = uc.Pagar(context.Background(), id1)
	require.NoError(t, err)

	pagadas, _, err := uc.Historial("", entity.CuentaPagado, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, pagadas, 1)
	assert.Equal(t, id1, pagadas[0].ID)

	todas, _, err := uc.Historial("", "todo", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}

func TestGetByID_Inexistente_RetornaNil(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	cuenta, err := uc.GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, cuenta)
}

func TestRecibo_CuentaInexistente_RetornaNoEncontrado(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	_, err := uc.Recibo(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestRecibo_GeneraPDF(t *testing.T) {
	m := nuevaMemoria()
	uc := nuevoMotor(m)

	id, err := uc.Crear(context.Background(), dto.CrearCuentaRequest{
		Cliente:    "Sofía",
		TipoCuenta: "consumo",
		Detalles:   []dto.DetalleCuentaRequest{linea(10, 1, "2.50")},
	})
	require.NoError(t, err)

	pdf, err := uc.Recibo(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
