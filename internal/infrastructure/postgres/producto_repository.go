package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, descripcion, proveedor, presentacion, cantidad_disponible, cantidad_minima, cantidad_maxima, precio_compra, precio_venta, activo, fecha_creado`

// Create persiste un producto y asigna el ID generado.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (descripcion, proveedor, presentacion, cantidad_disponible, cantidad_minima, cantidad_maxima, precio_compra, precio_venta, activo, fecha_creado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Descripcion, p.Proveedor, p.Presentacion, p.CantidadDisponible, p.CantidadMinima,
		p.CantidadMaxima, p.PrecioCompra, p.PrecioVenta, p.Activo, p.FechaCreado,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(),
		`SELECT `+productoCols+` FROM productos WHERE id = $1`, id,
	).Scan(&p.ID, &p.Descripcion, &p.Proveedor, &p.Presentacion, &p.CantidadDisponible,
		&p.CantidadMinima, &p.CantidadMaxima, &p.PrecioCompra, &p.PrecioVenta, &p.Activo, &p.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListActivos lista productos activos con búsqueda opcional. El término llega
// ya normalizado (sin tildes); unaccent hace lo propio del lado de la columna.
func (r *ProductoRepo) ListActivos(search string, limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoCols + `
		FROM productos
		WHERE activo = true
		  AND ($1::text = '' OR unaccent(descripcion) ILIKE '%' || $1 || '%' OR unaccent(proveedor) ILIKE '%' || $1 || '%')
		ORDER BY descripcion
		LIMIT $2 OFFSET $3`
	return r.listProductos(query, search, limit, offset)
}

// CountActivos cuenta productos activos con el mismo filtro de búsqueda.
func (r *ProductoRepo) CountActivos(search string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM productos
		WHERE activo = true
		  AND ($1::text = '' OR unaccent(descripcion) ILIKE '%' || $1 || '%' OR unaccent(proveedor) ILIKE '%' || $1 || '%')`
	var total int
	if err := r.q.QueryRow(context.Background(), query, search).Scan(&total); err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return total, nil
}

// ListTodosActivos lista todos los productos activos sin paginar.
func (r *ProductoRepo) ListTodosActivos() ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE activo = true ORDER BY descripcion`
	return r.listProductos(query)
}

// Update aplica solo los campos presentes contra la lista cerrada de columnas.
// Devuelve el producto actualizado o nil si no existe.
func (r *ProductoRepo) Update(id int64, campos repository.CamposProducto) (*entity.Producto, error) {
	sets := make([]string, 0, 8)
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if campos.Descripcion != nil {
		add("descripcion", *campos.Descripcion)
	}
	if campos.Proveedor != nil {
		add("proveedor", *campos.Proveedor)
	}
	if campos.Presentacion != nil {
		add("presentacion", *campos.Presentacion)
	}
	if campos.CantidadDisponible != nil {
		add("cantidad_disponible", *campos.CantidadDisponible)
	}
	if campos.CantidadMinima != nil {
		add("cantidad_minima", *campos.CantidadMinima)
	}
	if campos.CantidadMaxima != nil {
		add("cantidad_maxima", *campos.CantidadMaxima)
	}
	if campos.PrecioCompra != nil {
		add("precio_compra", *campos.PrecioCompra)
	}
	if campos.PrecioVenta != nil {
		add("precio_venta", *campos.PrecioVenta)
	}

	query := `UPDATE productos SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + productoCols
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Descripcion, &p.Proveedor, &p.Presentacion, &p.CantidadDisponible,
		&p.CantidadMinima, &p.CantidadMaxima, &p.PrecioCompra, &p.PrecioVenta, &p.Activo, &p.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update producto: %w", err)
	}
	return &p, nil
}

// SetActivo activa o desactiva el producto. Devuelve nil si no existe.
func (r *ProductoRepo) SetActivo(id int64, activo bool) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(),
		`UPDATE productos SET activo = $2 WHERE id = $1 RETURNING `+productoCols,
		id, activo,
	).Scan(&p.ID, &p.Descripcion, &p.Proveedor, &p.Presentacion, &p.CantidadDisponible,
		&p.CantidadMinima, &p.CantidadMaxima, &p.PrecioCompra, &p.PrecioVenta, &p.Activo, &p.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("toggle producto: %w", err)
	}
	return &p, nil
}

// IncrementarStock suma cantidad a cantidad_disponible (liquidación de compras).
func (r *ProductoRepo) IncrementarStock(id int64, cantidad int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad_disponible = cantidad_disponible + $2 WHERE id = $1`,
		id, cantidad)
	if err != nil {
		return fmt.Errorf("incrementar stock: %w", err)
	}
	return nil
}

// ListStockCritico lista productos activos ordenados por urgencia de
// reposición: primero los que están más por debajo de su mínimo.
func (r *ProductoRepo) ListStockCritico(limit int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoCols + `
		FROM productos
		WHERE activo = true
		ORDER BY (cantidad_disponible - cantidad_minima) ASC, descripcion
		LIMIT $1`
	return r.listProductos(query, limit)
}

func (r *ProductoRepo) listProductos(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Descripcion, &p.Proveedor, &p.Presentacion, &p.CantidadDisponible,
			&p.CantidadMinima, &p.CantidadMaxima, &p.PrecioCompra, &p.PrecioVenta, &p.Activo, &p.FechaCreado); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
