package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
	"github.com/lastonitas/cerveceria-api/pkg/jwt"
	"github.com/lastonitas/cerveceria-api/pkg/normalizar"
)

const costoBcrypt = 12

// UseCase gestiona autenticación y cuentas de personal.
type UseCase struct {
	repo       repository.UsuarioRepository
	jwtSecret  string
	jwtIssuer  string
	jwtMinutos int
}

// NewUseCase construye el módulo de autenticación.
func NewUseCase(repo repository.UsuarioRepository, jwtSecret, jwtIssuer string, jwtMinutos int) *UseCase {
	return &UseCase{
		repo:       repo,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		jwtMinutos: jwtMinutos,
	}
}

// Login autentica por nombre y password contra usuarios activos. La misma
// respuesta cubre usuario inexistente y password incorrecto.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Nombre == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	u, err := uc.repo.FindActivoPorNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciales
	}
	token, err := jwt.Generate(uc.jwtSecret, u.ID, u.Nombre, u.Rol, uc.jwtIssuer, uc.jwtMinutos)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: toUsuarioResponse(u),
	}, nil
}

// List lista usuarios con búsqueda por nombre insensible a tildes.
func (uc *UseCase) List(search string, page dto.PageRequest) ([]dto.UsuarioResponse, dto.Pagination, error) {
	page.Normalizar(10)
	termino := normalizar.Termino(search)
	total, err := uc.repo.Count(termino)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	list, err := uc.repo.List(termino, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUsuarioResponse(u))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// GetByID devuelve el usuario o nil si no existe.
func (uc *UseCase) GetByID(id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	out := toUsuarioResponse(u)
	return &out, nil
}

// Crear da de alta un usuario activo con el password hasheado.
func (uc *UseCase) Crear(in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Nombre == "" || in.Password == "" || !entity.RolValido(in.Rol) {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.repo.FindActivoPorNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), costoBcrypt)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Activo:       true,
		FechaCreado:  jornada.Fecha(jornada.Ahora()),
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	out := toUsuarioResponse(u)
	return &out, nil
}

// Editar actualiza nombre, email y rol; el password solo se rehash si viene.
func (uc *UseCase) Editar(id int64, in dto.EditarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Nombre == "" || !entity.RolValido(in.Rol) {
		return nil, domain.ErrEntradaInvalida
	}
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNoEncontrado
	}
	u.Nombre = in.Nombre
	u.Email = in.Email
	u.Rol = in.Rol
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), costoBcrypt)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	out := toUsuarioResponse(u)
	return &out, nil
}

// Eliminar desactiva el usuario (borrado lógico).
func (uc *UseCase) Eliminar(id int64) error {
	ok, err := uc.repo.Desactivar(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:          u.ID,
		Nombre:      u.Nombre,
		Email:       u.Email,
		Rol:         u.Rol,
		Activo:      u.Activo,
		FechaCreado: u.FechaCreado,
	}
}
