package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/application/usecase"
)

// GastoHandler maneja las peticiones HTTP de gastos operativos (protegido).
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

// NewGastoHandler construye el handler.
func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// List GET /api/gastos-operativos — paginados.
func (h *GastoHandler) List(c *fiber.Ctx) error {
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

// ListTodos GET /api/gastos-operativos/all — sin paginar.
func (h *GastoHandler) ListTodos(c *fiber.Ctx) error {
	list, err := h.uc.ListTodos()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKConteo(list, len(list)))
}

// GetByID GET /api/gastos-operativos/:id — gasto con sus detalles.
func (h *GastoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("gasto no encontrado"))
	}
	return c.JSON(dto.OK(out))
}

// Crear POST /api/gastos-operativos — el usuario sale del token.
func (h *GastoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	if in.UsuarioID == 0 {
		in.UsuarioID = GetUserID(c)
	}
	id, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("gasto registrado", fiber.Map{"id": id}))
}

// Editar PUT /api/gastos-operativos/:id — reemplazo transaccional de detalles.
func (h *GastoHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	var in dto.EditarGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	if err := h.uc.Editar(c.UserContext(), int64(id), in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("gasto actualizado", nil))
}

// CambiarEstado PATCH /api/gastos-operativos/:id/estado — aprobado o rechazado.
func (h *GastoHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	var in dto.CambiarEstadoGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.CambiarEstado(int64(id), in.Estado)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("estado actualizado", out))
}
