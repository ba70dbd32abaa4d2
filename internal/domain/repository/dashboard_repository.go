package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Agregados de solo lectura para el dashboard.

// ResumenProductos totales de inventario.
type ResumenProductos struct {
	TotalProductos int
	Activos        int
	StockCritico   int
}

// VentasPeriodo cuentas pagadas e ingresos dentro de un rango.
type VentasPeriodo struct {
	Ventas   int
	Ingresos decimal.Decimal
}

// ResumenMesas ocupación actual.
type ResumenMesas struct {
	MesasTotal    int
	MesasOcupadas int
}

// ProductoTop ranking de productos por unidades vendidas.
type ProductoTop struct {
	Descripcion  string
	Presentacion string
	TotalVendido int64
	Ingresos     decimal.Decimal
}

// Ganancias ingresos menos costos del periodo.
type Ganancias struct {
	Ingresos decimal.Decimal
	Costos   decimal.Decimal
	Ganancia decimal.Decimal
}

// VentaReciente resumen de una cuenta de los últimos días.
type VentaReciente struct {
	ID          int64
	Cliente     string
	Total       decimal.Decimal
	Estado      string
	TipoCuenta  string
	Items       int
	FechaCreado time.Time
	Subtotal    decimal.Decimal
}

// RangoFechas rango semiabierto [Desde, Hasta) en hora de negocio.
// Filtrar=false desactiva la condición de fecha.
type RangoFechas struct {
	Desde   time.Time
	Hasta   time.Time
	Filtrar bool
}

// DashboardRepository consultas de agregación del dashboard. Todos los
// rangos se enlazan como parámetros SQL.
type DashboardRepository interface {
	ResumenProductos() (ResumenProductos, error)
	VentasPeriodo(r RangoFechas) (VentasPeriodo, error)
	ResumenMesas() (ResumenMesas, error)
	TopProductos(r RangoFechas, limit int) ([]ProductoTop, error)
	Ganancias(r RangoFechas) (Ganancias, error)
	CountCuentasPendientes() (int, error)
	VentasRecientes(dias, limit, offset int) ([]VentaReciente, error)
	CountVentasRecientes(dias int) (int, error)
}
