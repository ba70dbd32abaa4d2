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

var _ repository.PromocionRepository = (*PromocionRepo)(nil)

// PromocionRepo implementación del puerto PromocionRepository sobre PostgreSQL (usable con pool o tx).
type PromocionRepo struct {
	q Querier
}

// NewPromocionRepository construye el adaptador de promociones. Pasar pool o tx (Querier).
func NewPromocionRepository(q Querier) *PromocionRepo {
	return &PromocionRepo{q: q}
}

const promocionCols = `id, nombre_promocion, producto_id, nuevo_precio_venta, activo, fecha_inicio, fecha_fin, fecha_creado`

// Create persiste una promoción y asigna el ID generado.
func (r *PromocionRepo) Create(p *entity.Promocion) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO promociones (nombre_promocion, producto_id, nuevo_precio_venta, activo, fecha_inicio, fecha_fin, fecha_creado)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		p.NombrePromocion, p.ProductoID, p.NuevoPrecioVenta, p.Activo, p.FechaInicio, p.FechaFin, p.FechaCreado,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaInvalida
		}
		return fmt.Errorf("insert promocion: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID.
func (r *PromocionRepo) GetByID(id int64) (*entity.Promocion, error) {
	var p entity.Promocion
	err := r.q.QueryRow(context.Background(),
		`SELECT `+promocionCols+` FROM promociones WHERE id = $1`, id,
	).Scan(&p.ID, &p.NombrePromocion, &p.ProductoID, &p.NuevoPrecioVenta, &p.Activo, &p.FechaInicio, &p.FechaFin, &p.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promocion: %w", err)
	}
	return &p, nil
}

// ListActivas lista promociones activas, más recientes primero.
func (r *PromocionRepo) ListActivas() ([]*entity.Promocion, error) {
	query := `SELECT ` + promocionCols + ` FROM promociones WHERE activo = true ORDER BY fecha_creado DESC, id DESC`
	return r.listPromociones(query)
}

// ListActivasPorProductos lista promociones activas de los productos indicados.
func (r *PromocionRepo) ListActivasPorProductos(productoIDs []int64) ([]*entity.Promocion, error) {
	query := `SELECT ` + promocionCols + ` FROM promociones WHERE activo = true AND producto_id = ANY($1) ORDER BY producto_id, fecha_creado DESC`
	return r.listPromociones(query, productoIDs)
}

// ListPorProducto lista el historial de promociones de un producto.
func (r *PromocionRepo) ListPorProducto(productoID int64) ([]*entity.Promocion, error) {
	query := `SELECT ` + promocionCols + ` FROM promociones WHERE producto_id = $1 ORDER BY fecha_creado DESC, id DESC`
	return r.listPromociones(query, productoID)
}

// Update reemplaza los datos de la promoción.
func (r *PromocionRepo) Update(p *entity.Promocion) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE promociones SET nombre_promocion = $2, producto_id = $3, nuevo_precio_venta = $4, activo = $5, fecha_inicio = $6, fecha_fin = $7
		 WHERE id = $1`,
		p.ID, p.NombrePromocion, p.ProductoID, p.NuevoPrecioVenta, p.Activo, p.FechaInicio, p.FechaFin,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaInvalida
		}
		return fmt.Errorf("update promocion: %w", err)
	}
	return nil
}

// Desactivar apaga la promoción (borrado lógico). false si no existe.
func (r *PromocionRepo) Desactivar(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE promociones SET activo = false WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("desactivar promocion: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PromocionRepo) listPromociones(query string, args ...any) ([]*entity.Promocion, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list promociones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Promocion
	for rows.Next() {
		var p entity.Promocion
		if err := rows.Scan(&p.ID, &p.NombrePromocion, &p.ProductoID, &p.NuevoPrecioVenta, &p.Activo, &p.FechaInicio, &p.FechaFin, &p.FechaCreado); err != nil {
			return nil, fmt.Errorf("scan promocion: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
