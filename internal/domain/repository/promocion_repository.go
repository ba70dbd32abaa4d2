package repository

import "github.com/lastonitas/cerveceria-api/internal/domain/entity"

// PromocionRepository define el puerto de persistencia para Promocion.
// El borrado es lógico (Desactivar).
type PromocionRepository interface {
	Create(p *entity.Promocion) error
	GetByID(id int64) (*entity.Promocion, error)
	ListActivas() ([]*entity.Promocion, error)
	ListActivasPorProductos(productoIDs []int64) ([]*entity.Promocion, error)
	ListPorProducto(productoID int64) ([]*entity.Promocion, error)
	Update(p *entity.Promocion) error
	Desactivar(id int64) (bool, error)
}
