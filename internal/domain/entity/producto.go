package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es un artículo del inventario. CantidadDisponible solo se
// incrementa al liquidar compras; la venta no descuenta stock (el conteo
// físico se concilia aparte).
type Producto struct {
	ID                 int64
	Descripcion        string
	Proveedor          string
	Presentacion       string
	CantidadDisponible decimal.Decimal
	CantidadMinima     decimal.Decimal
	CantidadMaxima     decimal.Decimal
	PrecioCompra       decimal.Decimal
	PrecioVenta        decimal.Decimal
	Activo             bool
	FechaCreado        time.Time
}

// Niveles de alerta de stock para el dashboard.
const (
	StockDanger  = "danger"
	StockWarning = "warning"
	StockSuccess = "success"
)

// NivelStock clasifica el stock disponible contra la cantidad mínima:
// danger <= mínimo, warning <= 2*mínimo, success en otro caso.
func (p Producto) NivelStock() string {
	switch {
	case p.CantidadDisponible.LessThanOrEqual(p.CantidadMinima):
		return StockDanger
	case p.CantidadDisponible.LessThanOrEqual(p.CantidadMinima.Mul(decimal.NewFromInt(2))):
		return StockWarning
	default:
		return StockSuccess
	}
}
