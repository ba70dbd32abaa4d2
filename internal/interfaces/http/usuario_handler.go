package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/auth"
	"github.com/lastonitas/cerveceria-api/internal/application/dto"
)

// UsuarioHandler maneja autenticación y administración de personal.
// Login es público; el resto requiere token.
type UsuarioHandler struct {
	uc *auth.UseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *auth.UseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Login POST /api/usuarios/login — nombre + password, devuelve JWT.
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("sesión iniciada", out))
}

// Logout POST /api/usuarios/logout — el token es stateless; el cliente lo
// descarta. Se responde OK para simetría con login.
func (h *UsuarioHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.OKMensaje("sesión cerrada", nil))
}

// List GET /api/usuarios — con búsqueda opcional.
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	list, pagination, err := h.uc.List(c.Query("search"), page)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKPaginado(list, pagination))
}

// GetByID GET /api/usuarios/:id.
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("usuario no encontrado"))
	}
	return c.JSON(dto.OK(out))
}

// Crear POST /api/usuarios — alta con hash bcrypt.
func (h *UsuarioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("usuario creado", out))
}

// Editar PUT /api/usuarios/:id.
func (h *UsuarioHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	var in dto.EditarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Editar(int64(id), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("usuario actualizado", out))
}

// Eliminar DELETE /api/usuarios/:id — borrado lógico.
func (h *UsuarioHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.uc.Eliminar(int64(id)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("usuario desactivado", nil))
}
