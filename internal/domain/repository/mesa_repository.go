package repository

import "github.com/lastonitas/cerveceria-api/internal/domain/entity"

// MesaRepository define el puerto de persistencia para Mesa.
// Los métodos *ForUpdate/ActualizarEstado se usan dentro de la transacción
// de liquidación; Reconciliar sincroniza el estado derivado de todas las
// mesas en un único UPDATE atómico.
type MesaRepository interface {
	Create(m *entity.Mesa) error
	GetByID(id int64) (*entity.Mesa, error)
	GetByNumero(numero int) (*entity.Mesa, error)
	List(estado string, limit, offset int) ([]*entity.Mesa, error)
	Count(estado string) (int, error)
	Update(m *entity.Mesa) error
	Delete(id int64) error

	// Reconciliar marca ocupada toda mesa con al menos una cuenta pendiente
	// y disponible el resto, en una sola sentencia.
	Reconciliar() error

	// GetForUpdate bloquea la fila de la mesa (SELECT ... FOR UPDATE) para
	// serializar el conteo-y-liberación contra pagos concurrentes.
	GetForUpdate(id int64) (*entity.Mesa, error)
	ActualizarEstado(id int64, estado string) error
}
