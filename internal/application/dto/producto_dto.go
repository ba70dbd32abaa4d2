package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest alta de producto de inventario.
type CrearProductoRequest struct {
	Descripcion        string          `json:"descripcion"`
	Proveedor          string          `json:"proveedor"`
	Presentacion       string          `json:"presentacion"`
	CantidadDisponible decimal.Decimal `json:"cantidad_disponible"`
	CantidadMinima     decimal.Decimal `json:"cantidad_minima"`
	CantidadMaxima     decimal.Decimal `json:"cantidad_maxima"`
	PrecioCompra       decimal.Decimal `json:"precio_compra"`
	PrecioVenta        decimal.Decimal `json:"precio_venta"`
}

// EditarProductoRequest actualización parcial: solo los campos presentes
// se aplican, contra una lista cerrada de columnas editables.
type EditarProductoRequest struct {
	Descripcion        *string          `json:"descripcion"`
	Proveedor          *string          `json:"proveedor"`
	Presentacion       *string          `json:"presentacion"`
	CantidadDisponible *decimal.Decimal `json:"cantidad_disponible"`
	CantidadMinima     *decimal.Decimal `json:"cantidad_minima"`
	CantidadMaxima     *decimal.Decimal `json:"cantidad_maxima"`
	PrecioCompra       *decimal.Decimal `json:"precio_compra"`
	PrecioVenta        *decimal.Decimal `json:"precio_venta"`
}

// ToggleProductoRequest activación/desactivación explícita.
type ToggleProductoRequest struct {
	Activo *bool `json:"activo"`
}

// ProductoResponse producto en respuestas.
type ProductoResponse struct {
	ID                 int64           `json:"id"`
	Descripcion        string          `json:"descripcion"`
	Proveedor          string          `json:"proveedor"`
	Presentacion       string          `json:"presentacion"`
	CantidadDisponible decimal.Decimal `json:"cantidad_disponible"`
	CantidadMinima     decimal.Decimal `json:"cantidad_minima"`
	CantidadMaxima     decimal.Decimal `json:"cantidad_maxima"`
	PrecioCompra       decimal.Decimal `json:"precio_compra"`
	PrecioVenta        decimal.Decimal `json:"precio_venta"`
	FechaCreado        time.Time       `json:"fecha_creado"`
	Activo             bool            `json:"activo"`
}

// ProductoStockResponse producto con nivel de alerta para el dashboard.
type ProductoStockResponse struct {
	ID                 int64           `json:"id"`
	Descripcion        string          `json:"descripcion"`
	Presentacion       string          `json:"presentacion"`
	Proveedor          string          `json:"proveedor"`
	CantidadDisponible decimal.Decimal `json:"cantidad_disponible"`
	CantidadMinima     decimal.Decimal `json:"cantidad_minima"`
	CantidadMaxima     decimal.Decimal `json:"cantidad_maxima"`
	PrecioVenta        decimal.Decimal `json:"precio_venta"`
	Status             string          `json:"status"`
}
