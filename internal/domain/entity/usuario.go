package entity

import "time"

// Roles de usuario para RBAC.
const (
	RolAdmin  = "admin"
	RolCajero = "cajero"
	RolMesero = "mesero"
)

// Usuario es una cuenta de personal. El borrado es lógico (Activo=false).
type Usuario struct {
	ID           int64
	Nombre       string
	Email        string
	PasswordHash string
	Rol          string
	Activo       bool
	FechaCreado  time.Time
}

// RolValido valida el conjunto cerrado de roles.
func RolValido(rol string) bool {
	return rol == RolAdmin || rol == RolCajero || rol == RolMesero
}
