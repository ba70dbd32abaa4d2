package compras

import (
	"context"

	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repos atados a la tx.
// La liquidación de compras toca compras y stock de productos en la misma
// transacción: o se aplica todo o nada.
type TxRunner interface {
	RunCompras(ctx context.Context, fn func(
		compraRepo repository.CompraRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
