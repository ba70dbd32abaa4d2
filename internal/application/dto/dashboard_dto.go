package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumenProductosDTO totales de inventario.
type ResumenProductosDTO struct {
	TotalProductos int `json:"total_productos"`
	Activos        int `json:"activos"`
	StockCritico   int `json:"stock_critico"`
}

// VentasPeriodoDTO ventas e ingresos del periodo consultado.
type VentasPeriodoDTO struct {
	VentasPeriodo   int             `json:"ventas_periodo"`
	IngresosPeriodo decimal.Decimal `json:"ingresos_periodo"`
}

// ResumenMesasDTO ocupación actual de mesas.
type ResumenMesasDTO struct {
	MesasTotal    int `json:"mesas_total"`
	MesasOcupadas int `json:"mesas_ocupadas"`
}

// ProductoTopDTO ranking por unidades vendidas.
type ProductoTopDTO struct {
	Descripcion  string          `json:"descripcion"`
	Presentacion string          `json:"presentacion"`
	TotalVendido int64           `json:"total_vendido"`
	Ingresos     decimal.Decimal `json:"ingresos"`
}

// GananciasDTO ingresos, costos y margen del periodo.
type GananciasDTO struct {
	Ingresos decimal.Decimal `json:"ingresos"`
	Costos   decimal.Decimal `json:"costos"`
	Ganancia decimal.Decimal `json:"ganancia"`
}

// DashboardResponse métricas principales del dashboard.
type DashboardResponse struct {
	Productos        ResumenProductosDTO `json:"productos"`
	VentasPeriodo    VentasPeriodoDTO    `json:"ventasPeriodo"`
	Mesas            ResumenMesasDTO     `json:"mesas"`
	StockCritico     int                 `json:"stockCritico"`
	TopProductos     []ProductoTopDTO    `json:"topProductos"`
	Ganancias        GananciasDTO        `json:"ganancias"`
	CuentasPendientes int                `json:"cuentasPendientes"`
}

// VentaRecienteDTO cuenta de los últimos días para el dashboard.
type VentaRecienteDTO struct {
	ID          int64           `json:"id"`
	Cliente     string          `json:"cliente"`
	Total       decimal.Decimal `json:"total"`
	Estado      string          `json:"estado"`
	TipoCuenta  string          `json:"tipo_cuenta"`
	Items       int             `json:"items"`
	FechaCreado time.Time       `json:"fecha_creado"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
