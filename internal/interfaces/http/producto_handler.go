package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP de productos (protegido).
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List GET /api/productos — activos, paginados, con búsqueda opcional.
func (h *ProductoHandler) List(c *fiber.Ctx) error {
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

// ListTodos GET /api/productos/all — todos los activos sin paginar.
func (h *ProductoHandler) ListTodos(c *fiber.Ctx) error {
	list, err := h.uc.ListTodos()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKConteo(list, len(list)))
}

// GetByID GET /api/productos/:id.
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("producto no encontrado"))
	}
	return c.JSON(dto.OK(out))
}

// Crear POST /api/productos.
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("producto creado", out))
}

// Editar PATCH /api/productos/:id — actualización parcial con lista cerrada
// de campos.
func (h *ProductoHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	var in dto.EditarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Editar(int64(id), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("producto actualizado", out))
}

// Toggle PATCH /api/productos/:id/toggle — activa o desactiva.
func (h *ProductoHandler) Toggle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	var in dto.ToggleProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Toggle(int64(id), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("producto actualizado", out))
}
