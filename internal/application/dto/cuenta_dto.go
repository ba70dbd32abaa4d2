package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleCuentaRequest línea de venta enviada por el cliente. PrecioVenta
// ya refleja la promoción aplicada (snapshot); PromocionID la referencia.
type DetalleCuentaRequest struct {
	ProductoID         int64           `json:"producto_id"`
	CantidadVendida    int             `json:"cantidad_vendida"`
	PrecioCompraActual decimal.Decimal `json:"precio_compra_actual"`
	PrecioVenta        decimal.Decimal `json:"precio_venta"`
	PromocionID        *int64          `json:"promocion_id"`
}

// CrearCuentaRequest alta de cuenta. El total del cliente se ignora: el
// servidor recalcula Σ(cantidad * precio_venta) sobre los detalles.
type CrearCuentaRequest struct {
	Cliente    string                 `json:"cliente"`
	Total      decimal.Decimal        `json:"total"` // informativo, no se persiste
	TipoCuenta string                 `json:"tipo_cuenta"`
	MesaID     *int64                 `json:"mesa_id"`
	Detalles   []DetalleCuentaRequest `json:"detalles"`
}

// EditarCuentaRequest reemplazo completo de cabecera y detalles de una
// cuenta pendiente.
type EditarCuentaRequest struct {
	Cliente    string                 `json:"cliente"`
	TipoCuenta string                 `json:"tipo_cuenta"`
	MesaID     *int64                 `json:"mesa_id"`
	Detalles   []DetalleCuentaRequest `json:"detalles"`
}

// CuentaResponse cabecera de cuenta en listados.
type CuentaResponse struct {
	ID          int64           `json:"id"`
	Cliente     string          `json:"cliente"`
	Total       decimal.Decimal `json:"total"`
	Estado      string          `json:"estado"`
	TipoCuenta  string          `json:"tipo_cuenta"`
	MesaID      *int64          `json:"mesa_id"`
	NumeroMesa  *int            `json:"numero_mesa"`
	FechaCreado time.Time       `json:"fecha_creado"`
}

// DetalleCuentaResponse línea de venta con datos del producto.
type DetalleCuentaResponse struct {
	ID                 int64           `json:"id"`
	CuentaID           int64           `json:"cuenta_id"`
	ProductoID         int64           `json:"producto_id"`
	CantidadVendida    int             `json:"cantidad_vendida"`
	PrecioCompraActual decimal.Decimal `json:"precio_compra_actual"`
	PrecioVenta        decimal.Decimal `json:"precio_venta"`
	PromocionID        *int64          `json:"promocion_id"`
	FechaCreado        time.Time       `json:"fecha_creado"`
	Descripcion        string          `json:"descripcion"`
	Presentacion       string          `json:"presentacion"`
}

// CuentaConDetallesResponse detalle completo de una cuenta.
type CuentaConDetallesResponse struct {
	CuentaResponse
	Detalles []DetalleCuentaResponse `json:"detalles"`
}

// CuentaCreadaResponse id de la cuenta recién creada.
type CuentaCreadaResponse struct {
	ID int64 `json:"id"`
}

// CuentaEditadaResponse resumen tras reemplazar los detalles.
type CuentaEditadaResponse struct {
	ID        int64           `json:"id"`
	Cliente   string          `json:"cliente"`
	Total     decimal.Decimal `json:"total"`
	Productos int             `json:"productos"`
}

// FiltrosHistorial eco de los filtros aplicados al historial.
type FiltrosHistorial struct {
	Periodo string `json:"periodo"`
	Estado  string `json:"estado"`
}
