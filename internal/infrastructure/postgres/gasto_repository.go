package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación del puerto GastoRepository sobre PostgreSQL (usable con pool o tx).
type GastoRepo struct {
	q Querier
}

// NewGastoRepository construye el adaptador de gastos. Pasar pool o tx (Querier).
func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

const gastoCols = `g.id, g.descripcion, g.tipo_gasto, g.usuario_id, g.mesa_id, g.total, g.estado, g.fecha_creado, g.fecha_modificado, u.nombre, m.numero_mesa`

const gastoFrom = `
	FROM gastos_operativos g
	JOIN usuarios u ON u.id = g.usuario_id
	LEFT JOIN mesas m ON m.id = g.mesa_id`

// Create persiste la cabecera del gasto y asigna el ID generado.
func (r *GastoRepo) Create(g *entity.Gasto) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO gastos_operativos (descripcion, tipo_gasto, usuario_id, mesa_id, total, estado, fecha_creado)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		g.Descripcion, g.TipoGasto, g.UsuarioID, g.MesaID, g.Total, g.Estado, g.FechaCreado,
	).Scan(&g.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaInvalida
		}
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// GetByID obtiene el gasto con nombre de usuario y número de mesa.
func (r *GastoRepo) GetByID(id int64) (*entity.Gasto, error) {
	var g entity.Gasto
	err := r.q.QueryRow(context.Background(),
		`SELECT `+gastoCols+gastoFrom+` WHERE g.id = $1`, id,
	).Scan(&g.ID, &g.Descripcion, &g.TipoGasto, &g.UsuarioID, &g.MesaID, &g.Total, &g.Estado,
		&g.FechaCreado, &g.FechaModificado, &g.NombreUsuario, &g.NumeroMesa)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	return &g, nil
}

// List lista gastos paginados, más recientes primero.
func (r *GastoRepo) List(limit, offset int) ([]*entity.Gasto, error) {
	query := `SELECT ` + gastoCols + gastoFrom + ` ORDER BY g.fecha_creado DESC, g.id DESC LIMIT $1 OFFSET $2`
	return r.listGastos(query, limit, offset)
}

// Count cuenta todos los gastos.
func (r *GastoRepo) Count() (int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM gastos_operativos`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count gastos: %w", err)
	}
	return total, nil
}

// ListTodos lista todos los gastos sin paginar (reportes).
func (r *GastoRepo) ListTodos() ([]*entity.Gasto, error) {
	query := `SELECT ` + gastoCols + gastoFrom + ` ORDER BY g.fecha_creado DESC, g.id DESC`
	return r.listGastos(query)
}

// InsertDetalle persiste una línea de gasto y asigna el ID generado.
func (r *GastoRepo) InsertDetalle(d *entity.GastoDetalle) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO detalles_gastos (gasto_id, producto_id, cantidad_consumida, precio_unitario, valor_total, fecha_creado)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		d.GastoID, d.ProductoID, d.CantidadConsumida, d.PrecioUnitario, d.ValorTotal, d.FechaCreado,
	).Scan(&d.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaInvalida
		}
		return fmt.Errorf("insert detalle gasto: %w", err)
	}
	return nil
}

// ListDetalles lista las líneas del gasto con datos del producto.
func (r *GastoRepo) ListDetalles(gastoID int64) ([]*entity.GastoDetalle, error) {
	query := `
		SELECT d.id, d.gasto_id, d.producto_id, d.cantidad_consumida, d.precio_unitario, d.valor_total, d.fecha_creado,
		       p.descripcion, p.presentacion
		FROM detalles_gastos d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.gasto_id = $1
		ORDER BY d.id`
	rows, err := r.q.Query(context.Background(), query, gastoID)
	if err != nil {
		return nil, fmt.Errorf("list detalles gasto: %w", err)
	}
	defer rows.Close()
	var list []*entity.GastoDetalle
	for rows.Next() {
		var d entity.GastoDetalle
		if err := rows.Scan(&d.ID, &d.GastoID, &d.ProductoID, &d.CantidadConsumida, &d.PrecioUnitario,
			&d.ValorTotal, &d.FechaCreado, &d.Descripcion, &d.Presentacion); err != nil {
			return nil, fmt.Errorf("scan detalle gasto: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DeleteDetalles borra todas las líneas del gasto (edición por reemplazo).
func (r *GastoRepo) DeleteDetalles(gastoID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM detalles_gastos WHERE gasto_id = $1`, gastoID)
	if err != nil {
		return fmt.Errorf("delete detalles gasto: %w", err)
	}
	return nil
}

// ActualizarCabecera modifica descripción, tipo y total. false si no existe.
func (r *GastoRepo) ActualizarCabecera(id int64, descripcion, tipoGasto string, total decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE gastos_operativos SET descripcion = $2, tipo_gasto = $3, total = $4 WHERE id = $1`,
		id, descripcion, tipoGasto, total,
	)
	if err != nil {
		return false, fmt.Errorf("update cabecera gasto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ActualizarEstado fija el estado y la fecha de modificación, sin guard sobre
// el estado actual. Devuelve el gasto actualizado o nil si no existe.
func (r *GastoRepo) ActualizarEstado(id int64, estado string, fechaModificado time.Time) (*entity.Gasto, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE gastos_operativos SET estado = $2, fecha_modificado = $3 WHERE id = $1`,
		id, estado, fechaModificado,
	)
	if err != nil {
		return nil, fmt.Errorf("update estado gasto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *GastoRepo) listGastos(query string, args ...any) ([]*entity.Gasto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Gasto
	for rows.Next() {
		var g entity.Gasto
		if err := rows.Scan(&g.ID, &g.Descripcion, &g.TipoGasto, &g.UsuarioID, &g.MesaID, &g.Total,
			&g.Estado, &g.FechaCreado, &g.FechaModificado, &g.NombreUsuario, &g.NumeroMesa); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
