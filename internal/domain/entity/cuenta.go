package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cuenta. La transición pendiente -> pagado es de una sola vía.
const (
	CuentaPendiente = "pendiente"
	CuentaPagado    = "pagado"
)

// Cuenta es la comanda de un cliente: líneas de consumo y total acumulado.
// MesaID es opcional (consumo para llevar no ocupa mesa).
// Invariante: Total == Σ(detalle.CantidadVendida * detalle.PrecioVenta),
// recalculado en servidor en cada mutación.
type Cuenta struct {
	ID          int64
	Cliente     string
	Total       decimal.Decimal
	Estado      string
	TipoCuenta  string
	MesaID      *int64
	NumeroMesa  *int // denormalizado vía JOIN en lecturas
	FechaCreado time.Time
}

// CuentaDetalle es una línea de venta. Guarda un snapshot de los precios al
// momento de la venta; PromocionID referencia la promoción aplicada, si hubo.
type CuentaDetalle struct {
	ID                 int64
	CuentaID           int64
	ProductoID         int64
	CantidadVendida    int
	PrecioCompraActual decimal.Decimal
	PrecioVenta        decimal.Decimal
	PromocionID        *int64
	FechaCreado        time.Time

	// Denormalizados vía JOIN con productos en lecturas.
	Descripcion  string
	Presentacion string
}

// EstadoCuentaValido valida el conjunto cerrado de estados de cuenta.
func EstadoCuentaValido(estado string) bool {
	return estado == CuentaPendiente || estado == CuentaPagado
}

// TotalDetalles calcula Σ(cantidad * precio_venta) con aritmética decimal.
func TotalDetalles(detalles []CuentaDetalle) decimal.Decimal {
	total := decimal.Zero
	for _, d := range detalles {
		total = total.Add(d.PrecioVenta.Mul(decimal.NewFromInt(int64(d.CantidadVendida))))
	}
	return total
}
