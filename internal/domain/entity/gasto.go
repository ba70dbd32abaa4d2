package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de gasto operativo. El cambio de estado es incondicional:
// no hay guard contra re-aprobación.
const (
	GastoPendiente = "pendiente"
	GastoAprobado  = "aprobado"
	GastoRechazado = "rechazado"
)

// Gasto es un gasto operativo del negocio (consumo de personal, merma, etc.).
type Gasto struct {
	ID              int64
	Descripcion     string
	TipoGasto       string
	UsuarioID       int64
	MesaID          *int64
	Total           decimal.Decimal
	Estado          string
	FechaCreado     time.Time
	FechaModificado *time.Time

	NombreUsuario string
	NumeroMesa    *int
}

// GastoDetalle es una línea de gasto asociada a un producto.
type GastoDetalle struct {
	ID                int64
	GastoID           int64
	ProductoID        int64
	CantidadConsumida decimal.Decimal
	PrecioUnitario    decimal.Decimal
	ValorTotal        decimal.Decimal
	FechaCreado       time.Time

	Descripcion  string
	Presentacion string
}

// EstadoGastoValido valida el conjunto cerrado de estados de gasto.
func EstadoGastoValido(estado string) bool {
	return estado == GastoPendiente || estado == GastoAprobado || estado == GastoRechazado
}

// EstadoResolucionValido valida los estados admitidos al resolver un gasto.
func EstadoResolucionValido(estado string) bool {
	return estado == GastoAprobado || estado == GastoRechazado
}
