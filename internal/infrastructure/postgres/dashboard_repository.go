package postgres

import (
	"context"
	"fmt"

	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregación de solo lectura sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ResumenProductos totales de inventario: productos, activos y en stock crítico.
func (r *DashboardRepo) ResumenProductos() (repository.ResumenProductos, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE activo),
		       COUNT(*) FILTER (WHERE activo AND cantidad_disponible <= cantidad_minima)
		FROM productos`
	var out repository.ResumenProductos
	err := r.q.QueryRow(context.Background(), query).Scan(&out.TotalProductos, &out.Activos, &out.StockCritico)
	if err != nil {
		return repository.ResumenProductos{}, fmt.Errorf("resumen productos: %w", err)
	}
	return out, nil
}

// VentasPeriodo cuentas pagadas e ingresos dentro del rango semiabierto.
func (r *DashboardRepo) VentasPeriodo(rango repository.RangoFechas) (repository.VentasPeriodo, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM cuentas
		WHERE estado = 'pagado'
		  AND ($1::boolean = false OR (fecha_creado >= $2 AND fecha_creado < $3))`
	var out repository.VentasPeriodo
	err := r.q.QueryRow(context.Background(), query, rango.Filtrar, rango.Desde, rango.Hasta).
		Scan(&out.Ventas, &out.Ingresos)
	if err != nil {
		return repository.VentasPeriodo{}, fmt.Errorf("ventas periodo: %w", err)
	}
	return out, nil
}

// ResumenMesas ocupación actual.
func (r *DashboardRepo) ResumenMesas() (repository.ResumenMesas, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE estado = 'ocupada') FROM mesas`
	var out repository.ResumenMesas
	if err := r.q.QueryRow(context.Background(), query).Scan(&out.MesasTotal, &out.MesasOcupadas); err != nil {
		return repository.ResumenMesas{}, fmt.Errorf("resumen mesas: %w", err)
	}
	return out, nil
}

// TopProductos ranking por unidades vendidas en cuentas pagadas del rango.
func (r *DashboardRepo) TopProductos(rango repository.RangoFechas, limit int) ([]repository.ProductoTop, error) {
	query := `
		SELECT p.descripcion, p.presentacion,
		       SUM(d.cantidad_vendida),
		       SUM(d.cantidad_vendida * d.precio_venta)
		FROM cuentas_detalle d
		JOIN cuentas c ON c.id = d.cuenta_id
		JOIN productos p ON p.id = d.producto_id
		WHERE c.estado = 'pagado'
		  AND ($1::boolean = false OR (c.fecha_creado >= $2 AND c.fecha_creado < $3))
		GROUP BY p.id, p.descripcion, p.presentacion
		ORDER BY SUM(d.cantidad_vendida) DESC
		LIMIT $4`
	rows, err := r.q.Query(context.Background(), query, rango.Filtrar, rango.Desde, rango.Hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductoTop
	for rows.Next() {
		var t repository.ProductoTop
		if err := rows.Scan(&t.Descripcion, &t.Presentacion, &t.TotalVendido, &t.Ingresos); err != nil {
			return nil, fmt.Errorf("scan top producto: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Ganancias ingresos menos costos de las líneas de cuentas pagadas del rango.
// El costo sale del snapshot precio_compra_actual de cada línea.
func (r *DashboardRepo) Ganancias(rango repository.RangoFechas) (repository.Ganancias, error) {
	query := `
		SELECT COALESCE(SUM(d.cantidad_vendida * d.precio_venta), 0),
		       COALESCE(SUM(d.cantidad_vendida * d.precio_compra_actual), 0)
		FROM cuentas_detalle d
		JOIN cuentas c ON c.id = d.cuenta_id
		WHERE c.estado = 'pagado'
		  AND ($1::boolean = false OR (c.fecha_creado >= $2 AND c.fecha_creado < $3))`
	var out repository.Ganancias
	err := r.q.QueryRow(context.Background(), query, rango.Filtrar, rango.Desde, rango.Hasta).
		Scan(&out.Ingresos, &out.Costos)
	if err != nil {
		return repository.Ganancias{}, fmt.Errorf("ganancias: %w", err)
	}
	out.Ganancia = out.Ingresos.Sub(out.Costos)
	return out, nil
}

// CountCuentasPendientes cuentas abiertas en este momento.
func (r *DashboardRepo) CountCuentasPendientes() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM cuentas WHERE estado = 'pendiente'`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count cuentas pendientes: %w", err)
	}
	return total, nil
}

// VentasRecientes cuentas de los últimos N días, con conteo de ítems y
// subtotal de líneas.
func (r *DashboardRepo) VentasRecientes(dias, limit, offset int) ([]repository.VentaReciente, error) {
	query := `
		SELECT c.id, c.cliente, c.total, c.estado, c.tipo_cuenta,
		       COALESCE(COUNT(d.id), 0),
		       c.fecha_creado,
		       COALESCE(SUM(d.cantidad_vendida * d.precio_venta), 0)
		FROM cuentas c
		LEFT JOIN cuentas_detalle d ON d.cuenta_id = c.id
		WHERE c.fecha_creado >= NOW() - ($1 || ' days')::interval
		GROUP BY c.id
		ORDER BY c.fecha_creado DESC, c.id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, dias, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ventas recientes: %w", err)
	}
	defer rows.Close()
	var list []repository.VentaReciente
	for rows.Next() {
		var v repository.VentaReciente
		if err := rows.Scan(&v.ID, &v.Cliente, &v.Total, &v.Estado, &v.TipoCuenta, &v.Items, &v.FechaCreado, &v.Subtotal); err != nil {
			return nil, fmt.Errorf("scan venta reciente: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// CountVentasRecientes cuenta filas con el mismo corte de días.
func (r *DashboardRepo) CountVentasRecientes(dias int) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM cuentas WHERE fecha_creado >= NOW() - ($1 || ' days')::interval`,
		dias,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count ventas recientes: %w", err)
	}
	return total, nil
}
