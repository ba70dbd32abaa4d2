package repository

import (
	"github.com/shopspring/decimal"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
)

// CamposProducto son los valores editables de un producto. Solo los punteros
// no nulos se incluyen en el UPDATE; el adaptador construye la lista de
// columnas desde este struct, nunca desde claves arbitrarias del cliente.
type CamposProducto struct {
	Descripcion        *string
	Proveedor          *string
	Presentacion       *string
	CantidadDisponible *decimal.Decimal
	CantidadMinima     *decimal.Decimal
	CantidadMaxima     *decimal.Decimal
	PrecioCompra       *decimal.Decimal
	PrecioVenta        *decimal.Decimal
}

// Vacio indica que no se envió ningún campo a actualizar.
func (c CamposProducto) Vacio() bool {
	return c.Descripcion == nil && c.Proveedor == nil && c.Presentacion == nil &&
		c.CantidadDisponible == nil && c.CantidadMinima == nil && c.CantidadMaxima == nil &&
		c.PrecioCompra == nil && c.PrecioVenta == nil
}

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	ListActivos(search string, limit, offset int) ([]*entity.Producto, error)
	CountActivos(search string) (int, error)
	ListTodosActivos() ([]*entity.Producto, error)

	// Update aplica solo los campos presentes; devuelve el producto
	// actualizado o nil si no existe.
	Update(id int64, campos CamposProducto) (*entity.Producto, error)
	SetActivo(id int64, activo bool) (*entity.Producto, error)

	// IncrementarStock suma cantidad a cantidad_disponible. Lo usa la
	// liquidación de compras dentro de su transacción.
	IncrementarStock(id int64, cantidad int) error

	// ListStockCritico lista productos activos ordenados por urgencia de
	// reposición (disponible contra mínimo).
	ListStockCritico(limit int) ([]*entity.Producto, error)
}
