package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación del puerto CompraRepository sobre PostgreSQL (usable con pool o tx).
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// Create persiste la cabecera de compra y asigna el ID generado.
func (r *CompraRepo) Create(c *entity.Compra) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO compras (proveedor, direccion, total, estado, fecha_creado)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.Proveedor, c.Direccion, c.Total, c.Estado, c.FechaCreado,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *CompraRepo) GetByID(id int64) (*entity.Compra, error) {
	var c entity.Compra
	err := r.q.QueryRow(context.Background(),
		`SELECT id, proveedor, direccion, total, estado, fecha_creado FROM compras WHERE id = $1`, id,
	).Scan(&c.ID, &c.Proveedor, &c.Direccion, &c.Total, &c.Estado, &c.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &c, nil
}

// List lista compras, más recientes primero.
func (r *CompraRepo) List(limit, offset int) ([]*entity.Compra, error) {
	query := `
		SELECT id, proveedor, direccion, total, estado, fecha_creado
		FROM compras
		ORDER BY fecha_creado DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Compra
	for rows.Next() {
		var c entity.Compra
		if err := rows.Scan(&c.ID, &c.Proveedor, &c.Direccion, &c.Total, &c.Estado, &c.FechaCreado); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count cuenta todas las compras.
func (r *CompraRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM compras`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count compras: %w", err)
	}
	return total, nil
}

// InsertDetalle persiste una línea de compra y asigna el ID generado.
func (r *CompraRepo) InsertDetalle(d *entity.CompraDetalle) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO compras_detalle (compra_id, producto_id, cantidad_vendida, precio_compra_actual, precio_venta, fecha_creado)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		d.CompraID, d.ProductoID, d.CantidadVendida, d.PrecioCompraActual, d.PrecioVenta, d.FechaCreado,
	).Scan(&d.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaInvalida
		}
		return fmt.Errorf("insert detalle compra: %w", err)
	}
	return nil
}

// ListDetalles lista las líneas de la compra con datos del producto.
func (r *CompraRepo) ListDetalles(compraID int64) ([]*entity.CompraDetalle, error) {
	query := `
		SELECT d.id, d.compra_id, d.producto_id, d.cantidad_vendida,
		       d.precio_compra_actual, d.precio_venta, d.fecha_creado,
		       p.descripcion, p.presentacion
		FROM compras_detalle d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.compra_id = $1
		ORDER BY d.id`
	rows, err := r.q.Query(context.Background(), query, compraID)
	if err != nil {
		return nil, fmt.Errorf("list detalles compra: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompraDetalle
	for rows.Next() {
		var d entity.CompraDetalle
		if err := rows.Scan(&d.ID, &d.CompraID, &d.ProductoID, &d.CantidadVendida,
			&d.PrecioCompraActual, &d.PrecioVenta, &d.FechaCreado,
			&d.Descripcion, &d.Presentacion); err != nil {
			return nil, fmt.Errorf("scan detalle compra: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// MarcarPagada transiciona pendiente -> pagado con el guard en el WHERE.
// false: compra inexistente o ya pagada.
func (r *CompraRepo) MarcarPagada(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE compras SET estado = 'pagado' WHERE id = $1 AND estado = 'pendiente'`, id)
	if err != nil {
		return false, fmt.Errorf("marcar compra pagada: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
