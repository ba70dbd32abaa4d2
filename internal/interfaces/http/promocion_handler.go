package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/application/usecase"
)

// PromocionHandler maneja las peticiones HTTP de promociones (protegido).
type PromocionHandler struct {
	uc *usecase.PromocionUseCase
}

// NewPromocionHandler construye el handler.
func NewPromocionHandler(uc *usecase.PromocionUseCase) *PromocionHandler {
	return &PromocionHandler{uc: uc}
}

// List GET /api/promociones?ids=1,2,3 — activas de los productos pedidos;
// sin ids, todas las activas.
func (h *PromocionHandler) List(c *fiber.Ctx) error {
	idsParam := c.Query("ids")
	if idsParam == "" {
		list, err := h.uc.ListActivas()
		if err != nil {
			return responderError(c, err)
		}
		return c.JSON(dto.OKConteo(list, len(list)))
	}
	ids := make([]int64, 0)
	for _, s := range strings.Split(idsParam, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("ids inválidos"))
		}
		ids = append(ids, id)
	}
	list, err := h.uc.ListPorProductos(ids)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKConteo(list, len(list)))
}

// ListTodas GET /api/promociones/all — todas las activas.
func (h *PromocionHandler) ListTodas(c *fiber.Ctx) error {
	list, err := h.uc.ListActivas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKConteo(list, len(list)))
}

// ListPorProducto GET /api/promociones/producto/:producto_id — historial.
func (h *PromocionHandler) ListPorProducto(c *fiber.Ctx) error {
	productoID, err := c.ParamsInt("producto_id")
	if err != nil || productoID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("producto_id inválido"))
	}
	list, err := h.uc.ListPorProducto(int64(productoID))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKConteo(list, len(list)))
}

// GetByID GET /api/promociones/:id.
func (h *PromocionHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("promoción no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// Crear POST /api/promociones.
func (h *PromocionHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("promoción creada", out))
}

// Editar PUT /api/promociones/:id.
func (h *PromocionHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	var in dto.EditarPromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Editar(int64(id), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("promoción actualizada", out))
}

// Eliminar DELETE /api/promociones/:id — borrado lógico.
func (h *PromocionHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	if err := h.uc.Eliminar(int64(id)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("promoción desactivada", nil))
}
