package dto

import "time"

// CrearUsuarioRequest alta de usuario de personal.
type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// EditarUsuarioRequest actualización de usuario; Password vacío conserva el hash.
type EditarUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// LoginRequest credenciales: el personal entra por nombre, no por email.
type LoginRequest struct {
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
}

// UsuarioResponse usuario en respuestas (sin hash).
type UsuarioResponse struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Email       string    `json:"email"`
	Rol         string    `json:"rol"`
	Activo      bool      `json:"activo"`
	FechaCreado time.Time `json:"fecha_creado"`
}

// LoginResponse token JWT más los datos del usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
