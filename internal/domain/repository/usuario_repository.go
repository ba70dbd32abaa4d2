package repository

import "github.com/lastonitas/cerveceria-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)

	// FindActivoPorNombre busca por nombre exacto (case-insensitive) entre
	// los usuarios activos; el login entra por nombre, no por email.
	FindActivoPorNombre(nombre string) (*entity.Usuario, error)

	List(search string, limit, offset int) ([]*entity.Usuario, error)
	Count(search string) (int, error)
	Update(u *entity.Usuario) error
	Desactivar(id int64) (bool, error)
}
