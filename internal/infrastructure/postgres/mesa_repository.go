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

var _ repository.MesaRepository = (*MesaRepo)(nil)

// MesaRepo implementación del puerto MesaRepository sobre PostgreSQL (usable con pool o tx).
type MesaRepo struct {
	q Querier
}

// NewMesaRepository construye el adaptador de mesas. Pasar pool o tx (Querier).
func NewMesaRepository(q Querier) *MesaRepo {
	return &MesaRepo{q: q}
}

// Create persiste una mesa y asigna el ID generado.
func (r *MesaRepo) Create(m *entity.Mesa) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO mesas (numero_mesa, estado, fecha_creado) VALUES ($1, $2, $3) RETURNING id`,
		m.NumeroMesa, m.Estado, m.FechaCreado,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert mesa: %w", err)
	}
	return nil
}

// GetByID obtiene una mesa por ID.
func (r *MesaRepo) GetByID(id int64) (*entity.Mesa, error) {
	var m entity.Mesa
	err := r.q.QueryRow(context.Background(),
		`SELECT id, numero_mesa, estado, fecha_creado FROM mesas WHERE id = $1`, id,
	).Scan(&m.ID, &m.NumeroMesa, &m.Estado, &m.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mesa: %w", err)
	}
	return &m, nil
}

// GetByNumero obtiene una mesa por su número visible.
func (r *MesaRepo) GetByNumero(numero int) (*entity.Mesa, error) {
	var m entity.Mesa
	err := r.q.QueryRow(context.Background(),
		`SELECT id, numero_mesa, estado, fecha_creado FROM mesas WHERE numero_mesa = $1`, numero,
	).Scan(&m.ID, &m.NumeroMesa, &m.Estado, &m.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mesa por numero: %w", err)
	}
	return &m, nil
}

// List lista mesas ordenadas por número, opcionalmente por estado.
func (r *MesaRepo) List(estado string, limit, offset int) ([]*entity.Mesa, error) {
	query := `
		SELECT id, numero_mesa, estado, fecha_creado
		FROM mesas
		WHERE ($1::text = '' OR estado = $1)
		ORDER BY numero_mesa
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, estado, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list mesas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mesa
	for rows.Next() {
		var m entity.Mesa
		if err := rows.Scan(&m.ID, &m.NumeroMesa, &m.Estado, &m.FechaCreado); err != nil {
			return nil, fmt.Errorf("scan mesa: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Count cuenta mesas, opcionalmente por estado.
func (r *MesaRepo) Count(estado string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM mesas WHERE ($1::text = '' OR estado = $1)`, estado,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count mesas: %w", err)
	}
	return total, nil
}

// Update actualiza número y estado de la mesa.
func (r *MesaRepo) Update(m *entity.Mesa) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE mesas SET numero_mesa = $2, estado = $3 WHERE id = $1`,
		m.ID, m.NumeroMesa, m.Estado,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update mesa: %w", err)
	}
	return nil
}

// Delete borra la mesa. Las cuentas históricas conservan mesa_id en NULL vía FK.
func (r *MesaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM mesas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mesa: %w", err)
	}
	return nil
}

// Reconciliar sincroniza el estado derivado de todas las mesas en un único
// UPDATE: ocupada si existe al menos una cuenta pendiente, disponible si no.
func (r *MesaRepo) Reconciliar() error {
	query := `
		UPDATE mesas m SET estado = CASE
			WHEN EXISTS (SELECT 1 FROM cuentas c WHERE c.mesa_id = m.id AND c.estado = 'pendiente')
				THEN 'ocupada'
			ELSE 'disponible'
		END
		WHERE m.estado <> CASE
			WHEN EXISTS (SELECT 1 FROM cuentas c WHERE c.mesa_id = m.id AND c.estado = 'pendiente')
				THEN 'ocupada'
			ELSE 'disponible'
		END`
	if _, err := r.q.Exec(context.Background(), query); err != nil {
		return fmt.Errorf("reconciliar mesas: %w", err)
	}
	return nil
}

// GetForUpdate bloquea la fila de la mesa para serializar el
// conteo-y-liberación contra pagos concurrentes. Solo tiene sentido dentro
// de una transacción.
func (r *MesaRepo) GetForUpdate(id int64) (*entity.Mesa, error) {
	var m entity.Mesa
	err := r.q.QueryRow(context.Background(),
		`SELECT id, numero_mesa, estado, fecha_creado FROM mesas WHERE id = $1 FOR UPDATE`, id,
	).Scan(&m.ID, &m.NumeroMesa, &m.Estado, &m.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock mesa: %w", err)
	}
	return &m, nil
}

// ActualizarEstado fija el estado de la mesa.
func (r *MesaRepo) ActualizarEstado(id int64, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE mesas SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado mesa: %w", err)
	}
	return nil
}
