package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
)

// GastoRepository define el puerto de persistencia para Gasto operativo.
type GastoRepository interface {
	Create(g *entity.Gasto) error
	GetByID(id int64) (*entity.Gasto, error)
	List(limit, offset int) ([]*entity.Gasto, error)
	Count() (int, error)
	ListTodos() ([]*entity.Gasto, error)

	InsertDetalle(d *entity.GastoDetalle) error
	ListDetalles(gastoID int64) ([]*entity.GastoDetalle, error)
	DeleteDetalles(gastoID int64) error

	// ActualizarCabecera modifica descripción/tipo/total; false = no existe.
	ActualizarCabecera(id int64, descripcion, tipoGasto string, total decimal.Decimal) (bool, error)

	// ActualizarEstado es incondicional respecto al estado actual (no hay
	// guard contra doble aprobación). Devuelve el gasto actualizado o nil.
	ActualizarEstado(id int64, estado string, fechaModificado time.Time) (*entity.Gasto, error)
}
