package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleGastoRequest línea de gasto operativo.
type DetalleGastoRequest struct {
	ProductoID        int64           `json:"producto_id"`
	CantidadConsumida decimal.Decimal `json:"cantidad_consumida"`
	PrecioUnitario    decimal.Decimal `json:"precio_unitario"`
	ValorTotal        decimal.Decimal `json:"valor_total"`
}

// CrearGastoRequest alta de gasto operativo.
type CrearGastoRequest struct {
	Descripcion string                `json:"descripcion"`
	TipoGasto   string                `json:"tipo_gasto"`
	MesaID      *int64                `json:"mesa_id"`
	UsuarioID   int64                 `json:"usuario_id"`
	Total       decimal.Decimal       `json:"total"`
	Detalles    []DetalleGastoRequest `json:"detalles"`
}

// EditarGastoRequest reemplazo de cabecera y detalles de un gasto.
type EditarGastoRequest struct {
	Descripcion string                `json:"descripcion"`
	TipoGasto   string                `json:"tipo_gasto"`
	Total       decimal.Decimal       `json:"total"`
	Detalles    []DetalleGastoRequest `json:"detalles"`
}

// CambiarEstadoGastoRequest resolución de un gasto: aprobado o rechazado.
type CambiarEstadoGastoRequest struct {
	Estado string `json:"estado"`
}

// GastoResponse gasto en respuestas.
type GastoResponse struct {
	ID              int64           `json:"id"`
	Descripcion     string          `json:"descripcion"`
	TipoGasto       string          `json:"tipo_gasto"`
	UsuarioID       int64           `json:"usuario_id"`
	MesaID          *int64          `json:"mesa_id"`
	Total           decimal.Decimal `json:"total"`
	Estado          string          `json:"estado"`
	FechaCreado     time.Time       `json:"fecha_creado"`
	FechaModificado *time.Time      `json:"fecha_modificado,omitempty"`
	NombreUsuario   string          `json:"nombre_usuario"`
	NumeroMesa      *int            `json:"numero_mesa"`
}

// DetalleGastoResponse línea de gasto con datos del producto.
type DetalleGastoResponse struct {
	ProductoID        int64           `json:"producto_id"`
	CantidadConsumida decimal.Decimal `json:"cantidad_consumida"`
	PrecioUnitario    decimal.Decimal `json:"precio_unitario"`
	ValorTotal        decimal.Decimal `json:"valor_total"`
	Descripcion       string          `json:"descripcion"`
	Presentacion      string          `json:"presentacion"`
}

// GastoConDetallesResponse detalle completo de un gasto.
type GastoConDetallesResponse struct {
	GastoResponse
	Detalles []DetalleGastoResponse `json:"detalles"`
}
