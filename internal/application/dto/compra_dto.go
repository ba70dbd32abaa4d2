package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleCompraRequest línea de compra: cantidad recibida y precios.
type DetalleCompraRequest struct {
	ProductoID         int64           `json:"producto_id"`
	CantidadVendida    int             `json:"cantidad_vendida"`
	PrecioCompraActual decimal.Decimal `json:"precio_compra_actual"`
	PrecioVenta        decimal.Decimal `json:"precio_venta"`
}

// CrearCompraRequest alta de compra a proveedor.
type CrearCompraRequest struct {
	Proveedor string                 `json:"proveedor"`
	Direccion string                 `json:"direccion"`
	Total     decimal.Decimal        `json:"total"`
	Estado    string                 `json:"estado"`
	Detalles  []DetalleCompraRequest `json:"detalles"`
}

// CompraResponse cabecera de compra.
type CompraResponse struct {
	ID          int64           `json:"id"`
	Proveedor   string          `json:"proveedor"`
	Direccion   string          `json:"direccion"`
	Total       decimal.Decimal `json:"total"`
	Estado      string          `json:"estado"`
	FechaCreado time.Time       `json:"fecha_creado"`
}

// DetalleCompraResponse línea de compra con datos del producto.
type DetalleCompraResponse struct {
	ID                 int64           `json:"id"`
	CompraID           int64           `json:"compra_id"`
	ProductoID         int64           `json:"producto_id"`
	CantidadVendida    int             `json:"cantidad_vendida"`
	PrecioCompraActual decimal.Decimal `json:"precio_compra_actual"`
	PrecioVenta        decimal.Decimal `json:"precio_venta"`
	FechaCreado        time.Time       `json:"fecha_creado"`
	Descripcion        string          `json:"descripcion"`
	Presentacion       string          `json:"presentacion"`
}

// CompraConDetallesResponse detalle completo de una compra.
type CompraConDetallesResponse struct {
	CompraResponse
	TotalDetalles int                     `json:"total_detalles"`
	Detalles      []DetalleCompraResponse `json:"detalles"`
}
