package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de compra a proveedor.
const (
	CompraPendiente = "pendiente"
	CompraPagado    = "pagado"
)

// Compra es una entrega de proveedor. Al pagarla se incrementa el stock de
// cada producto según sus detalles.
type Compra struct {
	ID          int64
	Proveedor   string
	Direccion   string
	Total       decimal.Decimal
	Estado      string
	FechaCreado time.Time
}

// CompraDetalle es una línea de compra: cantidad recibida y precios de
// compra/reventa al momento de la entrega.
type CompraDetalle struct {
	ID                 int64
	CompraID           int64
	ProductoID         int64
	CantidadVendida    int // cantidad recibida; nombre heredado del esquema
	PrecioCompraActual decimal.Decimal
	PrecioVenta        decimal.Decimal
	FechaCreado        time.Time

	Descripcion  string
	Presentacion string
}

// EstadoCompraValido valida el conjunto cerrado de estados de compra.
func EstadoCompraValido(estado string) bool {
	return estado == CompraPendiente || estado == CompraPagado
}
