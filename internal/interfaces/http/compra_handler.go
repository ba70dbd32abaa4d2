package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/compras"
	"github.com/lastonitas/cerveceria-api/internal/application/dto"
)

// CompraHandler maneja las peticiones HTTP de compras a proveedor (protegido).
type CompraHandler struct {
	uc *compras.UseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *compras.UseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// List GET /api/compras — compras paginadas.
func (h *CompraHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	list, pagination, err := h.uc.List(page)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKPaginado(list, pagination))
}

// GetByID GET /api/compras/:id — compra con sus detalles.
func (h *CompraHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("compra no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// Crear POST /api/compras — registra la compra (transaccional).
func (h *CompraHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	id, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("compra registrada", fiber.Map{"id": id}))
}

// Pagar PATCH /api/compras/:id/pagar — liquida la compra e ingresa stock.
func (h *CompraHandler) Pagar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.uc.Pagar(c.UserContext(), int64(id)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("compra pagada, stock actualizado", nil))
}
