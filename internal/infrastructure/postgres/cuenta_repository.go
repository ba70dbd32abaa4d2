package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

var _ repository.CuentaRepository = (*CuentaRepo)(nil)

// CuentaRepo implementación del puerto CuentaRepository sobre PostgreSQL (usable con pool o tx).
type CuentaRepo struct {
	q Querier
}

// NewCuentaRepository construye el adaptador de cuentas. Pasar pool o tx (Querier).
func NewCuentaRepository(q Querier) *CuentaRepo {
	return &CuentaRepo{q: q}
}

const cuentaCols = `c.id, c.cliente, c.total, c.estado, c.tipo_cuenta, c.mesa_id, m.numero_mesa, c.fecha_creado`

// Create persiste la cabecera y asigna el ID generado.
func (r *CuentaRepo) Create(c *entity.Cuenta) error {
	query := `
		INSERT INTO cuentas (cliente, total, estado, tipo_cuenta, mesa_id, fecha_creado)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Cliente, c.Total, c.Estado, c.TipoCuenta, c.MesaID, c.FechaCreado,
	).Scan(&c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaInvalida
		}
		return fmt.Errorf("insert cuenta: %w", err)
	}
	return nil
}

// GetByID obtiene la cuenta con el número de mesa denormalizado.
func (r *CuentaRepo) GetByID(id int64) (*entity.Cuenta, error) {
	query := `
		SELECT ` + cuentaCols + `
		FROM cuentas c
		LEFT JOIN mesas m ON m.id = c.mesa_id
		WHERE c.id = $1`
	var c entity.Cuenta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Cliente, &c.Total, &c.Estado, &c.TipoCuenta, &c.MesaID, &c.NumeroMesa, &c.FechaCreado,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuenta: %w", err)
	}
	return &c, nil
}

// ListPendientes lista cuentas abiertas, más recientes primero.
func (r *CuentaRepo) ListPendientes(limit, offset int) ([]*entity.Cuenta, error) {
	query := `
		SELECT ` + cuentaCols + `
		FROM cuentas c
		LEFT JOIN mesas m ON m.id = c.mesa_id
		WHERE c.estado = 'pendiente'
		ORDER BY c.fecha_creado DESC, c.id DESC
		LIMIT $1 OFFSET $2`
	return r.listCuentas(query, limit, offset)
}

// CountPendientes cuenta las cuentas abiertas.
func (r *CuentaRepo) CountPendientes() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM cuentas WHERE estado = 'pendiente'`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count cuentas pendientes: %w", err)
	}
	return total, nil
}

// ListHistorial lista cuentas por rango de fechas semiabierto y estado.
// Los rangos llegan como parámetros, nunca interpolados.
func (r *CuentaRepo) ListHistorial(f repository.FiltroHistorial, limit, offset int) ([]*entity.Cuenta, error) {
	query := `
		SELECT ` + cuentaCols + `
		FROM cuentas c
		LEFT JOIN mesas m ON m.id = c.mesa_id
		WHERE ($1::boolean = false OR (c.fecha_creado >= $2 AND c.fecha_creado < $3))
		  AND ($4::text = '' OR $4::text = 'todo' OR c.estado = $4)
		ORDER BY c.fecha_creado DESC, c.id DESC
		LIMIT $5 OFFSET $6`
	return r.listCuentas(query, f.Filtrar, f.Desde, f.Hasta, f.Estado, limit, offset)
}

// CountHistorial cuenta filas con el mismo filtro del historial.
func (r *CuentaRepo) CountHistorial(f repository.FiltroHistorial) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM cuentas c
		WHERE ($1::boolean = false OR (c.fecha_creado >= $2 AND c.fecha_creado < $3))
		  AND ($4::text = '' OR $4::text = 'todo' OR c.estado = $4)`
	var total int
	err := r.q.QueryRow(context.Background(), query, f.Filtrar, f.Desde, f.Hasta, f.Estado).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count historial: %w", err)
	}
	return total, nil
}

// ListDetalles lista las líneas de la cuenta con datos del producto.
func (r *CuentaRepo) ListDetalles(cuentaID int64) ([]*entity.CuentaDetalle, error) {
	query := `
		SELECT d.id, d.cuenta_id, d.producto_id, d.cantidad_vendida,
		       d.precio_compra_actual, d.precio_venta, d.promocion_id, d.fecha_creado,
		       p.descripcion, p.presentacion
		FROM cuentas_detalle d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.cuenta_id = $1
		ORDER BY d.id`
	rows, err := r.q.Query(context.Background(), query, cuentaID)
	if err != nil {
		return nil, fmt.Errorf("list detalles cuenta: %w", err)
	}
	defer rows.Close()
	var list []*entity.CuentaDetalle
	for rows.Next() {
		var d entity.CuentaDetalle
		if err := rows.Scan(&d.ID, &d.CuentaID, &d.ProductoID, &d.CantidadVendida,
			&d.PrecioCompraActual, &d.PrecioVenta, &d.PromocionID, &d.FechaCreado,
			&d.Descripcion, &d.Presentacion); err != nil {
			return nil, fmt.Errorf("scan detalle cuenta: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// InsertDetalle persiste una línea de venta y asigna el ID generado.
func (r *CuentaRepo) InsertDetalle(d *entity.CuentaDetalle) error {
	query := `
		INSERT INTO cuentas_detalle (cuenta_id, producto_id, cantidad_vendida, precio_compra_actual, precio_venta, promocion_id, fecha_creado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		d.CuentaID, d.ProductoID, d.CantidadVendida, d.PrecioCompraActual, d.PrecioVenta, d.PromocionID, d.FechaCreado,
	).Scan(&d.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaInvalida
		}
		return fmt.Errorf("insert detalle cuenta: %w", err)
	}
	return nil
}

// DeleteDetalles borra todas las líneas de la cuenta (edición por reemplazo).
func (r *CuentaRepo) DeleteDetalles(cuentaID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cuentas_detalle WHERE cuenta_id = $1`, cuentaID)
	if err != nil {
		return fmt.Errorf("delete detalles cuenta: %w", err)
	}
	return nil
}

// ActualizarHeaderPendiente actualiza la cabecera solo si la cuenta sigue
// pendiente. El guard va en el WHERE: cero filas afectadas significa cuenta
// inexistente o ya pagada.
func (r *CuentaRepo) ActualizarHeaderPendiente(id int64, cliente, tipoCuenta string, mesaID *int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE cuentas SET cliente = $2, tipo_cuenta = $3, mesa_id = $4 WHERE id = $1 AND estado = 'pendiente'`,
		id, cliente, tipoCuenta, mesaID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrReferenciaInvalida
		}
		return false, fmt.Errorf("update cabecera cuenta: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ActualizarTotal fija el total recalculado en servidor.
func (r *CuentaRepo) ActualizarTotal(id int64, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cuentas SET total = $2 WHERE id = $1`, id, total)
	if err != nil {
		return fmt.Errorf("update total cuenta: %w", err)
	}
	return nil
}

// MarcarPagada transiciona pendiente -> pagado con el guard en el WHERE y
// devuelve la mesa referenciada. ok=false: cuenta inexistente o ya pagada.
func (r *CuentaRepo) MarcarPagada(id int64) (*int64, bool, error) {
	var mesaID *int64
	err := r.q.QueryRow(context.Background(),
		`UPDATE cuentas SET estado = 'pagado' WHERE id = $1 AND estado = 'pendiente' RETURNING mesa_id`,
		id,
	).Scan(&mesaID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("marcar cuenta pagada: %w", err)
	}
	return mesaID, true, nil
}

// CountPendientesPorMesa cuenta las cuentas pendientes que referencian la mesa.
func (r *CuentaRepo) CountPendientesPorMesa(mesaID int64) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM cuentas WHERE mesa_id = $1 AND estado = 'pendiente'`,
		mesaID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count pendientes por mesa: %w", err)
	}
	return total, nil
}

func (r *CuentaRepo) listCuentas(query string, args ...any) ([]*entity.Cuenta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cuentas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cuenta
	for rows.Next() {
		var c entity.Cuenta
		if err := rows.Scan(&c.ID, &c.Cliente, &c.Total, &c.Estado, &c.TipoCuenta, &c.MesaID, &c.NumeroMesa, &c.FechaCreado); err != nil {
			return nil, fmt.Errorf("scan cuenta: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
