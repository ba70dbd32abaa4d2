package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
)

// FiltroHistorial acota el historial de cuentas por rango de fechas de
// negocio (semiabierto [Desde, Hasta)) y por estado. Los rangos provienen
// de jornada.RangoPeriodo y se enlazan como parámetros, nunca se
// interpolan en el SQL.
type FiltroHistorial struct {
	Desde   time.Time
	Hasta   time.Time
	Filtrar bool   // false = sin condición de fecha ("todo")
	Estado  string // "" o "todo" = sin condición de estado
}

// CuentaRepository define el puerto de persistencia para Cuenta y sus
// detalles. MarcarPagada y ActualizarHeaderPendiente implementan los
// guards de liquidación por conteo de filas afectadas.
type CuentaRepository interface {
	Create(c *entity.Cuenta) error
	GetByID(id int64) (*entity.Cuenta, error)
	ListPendientes(limit, offset int) ([]*entity.Cuenta, error)
	CountPendientes() (int, error)
	ListHistorial(f FiltroHistorial, limit, offset int) ([]*entity.Cuenta, error)
	CountHistorial(f FiltroHistorial) (int, error)

	ListDetalles(cuentaID int64) ([]*entity.CuentaDetalle, error)
	InsertDetalle(d *entity.CuentaDetalle) error
	DeleteDetalles(cuentaID int64) error

	// ActualizarHeaderPendiente actualiza cliente/tipo/mesa solo si la
	// cuenta sigue pendiente. Devuelve false si no afectó filas.
	ActualizarHeaderPendiente(id int64, cliente, tipoCuenta string, mesaID *int64) (bool, error)
	ActualizarTotal(id int64, total decimal.Decimal) error

	// MarcarPagada transiciona pendiente -> pagado de forma condicional y
	// devuelve la mesa referenciada. ok=false significa que la cuenta no
	// existe o ya estaba pagada (guard de doble liquidación).
	MarcarPagada(id int64) (mesaID *int64, ok bool, err error)

	// CountPendientesPorMesa cuenta las cuentas pendientes que aún
	// referencian la mesa (sin acotar por fecha).
	CountPendientesPorMesa(mesaID int64) (int, error)
}
