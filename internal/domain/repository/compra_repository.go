package repository

import "github.com/lastonitas/cerveceria-api/internal/domain/entity"

// CompraRepository define el puerto de persistencia para Compra.
type CompraRepository interface {
	Create(c *entity.Compra) error
	GetByID(id int64) (*entity.Compra, error)
	List(limit, offset int) ([]*entity.Compra, error)
	Count() (int, error)

	InsertDetalle(d *entity.CompraDetalle) error
	ListDetalles(compraID int64) ([]*entity.CompraDetalle, error)

	// MarcarPagada transiciona pendiente -> pagado de forma condicional.
	// false = compra inexistente o ya pagada.
	MarcarPagada(id int64) (bool, error)
}
