package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/application/usecase"
)

// DashboardHandler métricas de solo lectura del tablero (protegido).
type DashboardHandler struct {
	uc         *usecase.DashboardUseCase
	productoUC *usecase.ProductoUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, productoUC *usecase.ProductoUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, productoUC: productoUC}
}

// Resumen GET /api/dashboard?periodo= — métricas del periodo.
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Query("periodo"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Productos GET /api/dashboard/productos — stock crítico con nivel de alerta.
func (h *DashboardHandler) Productos(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	list, err := h.productoUC.StockCritico(limit)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKConteo(list, len(list)))
}

// Ventas GET /api/dashboard/ventas — cuentas de los últimos días, paginadas.
func (h *DashboardHandler) Ventas(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	dias := c.QueryInt("dias", 7)
	list, pagination, err := h.uc.VentasRecientes(dias, page)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKPaginado(list, pagination))
}
