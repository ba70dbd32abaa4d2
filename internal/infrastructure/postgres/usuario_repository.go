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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, nombre, email, password_hash, rol, activo, fecha_creado`

// Create persiste un usuario y asigna el ID generado.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO usuarios (nombre, email, password_hash, rol, activo, fecha_creado)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		u.Nombre, u.Email, u.PasswordHash, u.Rol, u.Activo, u.FechaCreado,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(),
		`SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id,
	).Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.Activo, &u.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// FindActivoPorNombre busca por nombre exacto case-insensitive entre activos.
func (r *UsuarioRepo) FindActivoPorNombre(nombre string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(),
		`SELECT `+usuarioCols+` FROM usuarios WHERE LOWER(nombre) = LOWER($1) AND activo = true`, nombre,
	).Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.Activo, &u.FechaCreado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find usuario: %w", err)
	}
	return &u, nil
}

// List lista usuarios con búsqueda opcional por nombre o email.
func (r *UsuarioRepo) List(search string, limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT ` + usuarioCols + `
		FROM usuarios
		WHERE ($1::text = '' OR unaccent(nombre) ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		ORDER BY nombre
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.Activo, &u.FechaCreado); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Count cuenta usuarios con el mismo filtro de búsqueda.
func (r *UsuarioRepo) Count(search string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM usuarios
		WHERE ($1::text = '' OR unaccent(nombre) ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')`
	var total int
	if err := r.q.QueryRow(context.Background(), query, search).Scan(&total); err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return total, nil
}

// Update actualiza nombre, email, hash y rol.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET nombre = $2, email = $3, password_hash = $4, rol = $5 WHERE id = $1`,
		u.ID, u.Nombre, u.Email, u.PasswordHash, u.Rol,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Desactivar apaga el usuario (borrado lógico). false si no existe.
func (r *UsuarioRepo) Desactivar(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET activo = false WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("desactivar usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
