package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/application/usecase"
)

// MesaHandler maneja las peticiones HTTP de mesas (protegido).
type MesaHandler struct {
	uc *usecase.MesaUseCase
}

// NewMesaHandler construye el handler.
func NewMesaHandler(uc *usecase.MesaUseCase) *MesaHandler {
	return &MesaHandler{uc: uc}
}

// List GET /api/mesas — reconcilia y lista, con filtro opcional de estado.
func (h *MesaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	list, pagination, err := h.uc.List(c.Query("estado"), page)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKPaginado(list, pagination))
}

// GetByID GET /api/mesas/:id.
func (h *MesaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("mesa no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// Crear POST /api/mesas.
func (h *MesaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearMesaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("mesa creada", out))
}

// Editar PATCH /api/mesas/:id — número y/o estado.
func (h *MesaHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	var in dto.EditarMesaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Editar(int64(id), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("mesa actualizada", out))
}

// Eliminar DELETE /api/mesas/:id — rechazado si tiene cuentas pendientes.
func (h *MesaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.uc.Eliminar(int64(id)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("mesa eliminada", nil))
}
