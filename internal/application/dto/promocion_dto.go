package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearPromocionRequest alta de promoción sobre un producto.
type CrearPromocionRequest struct {
	NombrePromocion  string          `json:"nombre_promocion"`
	ProductoID       int64           `json:"producto_id"`
	NuevoPrecioVenta decimal.Decimal `json:"nuevo_precio_venta"`
	FechaInicio      *time.Time      `json:"fecha_inicio"`
	FechaFin         *time.Time      `json:"fecha_fin"`
}

// EditarPromocionRequest actualización completa; Activo nil conserva el actual.
type EditarPromocionRequest struct {
	NombrePromocion  string          `json:"nombre_promocion"`
	ProductoID       int64           `json:"producto_id"`
	NuevoPrecioVenta decimal.Decimal `json:"nuevo_precio_venta"`
	FechaInicio      *time.Time      `json:"fecha_inicio"`
	FechaFin         *time.Time      `json:"fecha_fin"`
	Activo           *bool           `json:"activo"`
}

// PromocionResponse promoción en respuestas.
type PromocionResponse struct {
	ID               int64           `json:"id"`
	NombrePromocion  string          `json:"nombre_promocion"`
	ProductoID       int64           `json:"producto_id"`
	NuevoPrecioVenta decimal.Decimal `json:"nuevo_precio_venta"`
	Activo           bool            `json:"activo"`
	FechaInicio      *time.Time      `json:"fecha_inicio"`
	FechaFin         *time.Time      `json:"fecha_fin"`
	FechaCreado      time.Time       `json:"fecha_creado"`
}
