package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/cuentas"
	"github.com/lastonitas/cerveceria-api/internal/application/dto"
)

// CuentaHandler maneja las peticiones HTTP del motor de cuentas (protegido).
type CuentaHandler struct {
	uc *cuentas.UseCase
}

// NewCuentaHandler construye el handler.
func NewCuentaHandler(uc *cuentas.UseCase) *CuentaHandler {
	return &CuentaHandler{uc: uc}
}

// ListPendientes GET /api/cuentas — cuentas abiertas paginadas.
func (h *CuentaHandler) ListPendientes(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	list, pagination, err := h.uc.ListPendientes(page)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKPaginado(list, pagination))
}

// Historial GET /api/cuentas/historial — por periodo de negocio y estado.
func (h *CuentaHandler) Historial(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("parámetros de paginación inválidos"))
	}
	periodo := c.Query("periodo")
	estado := c.Query("estado")

	list, pagination, err := h.uc.Historial(periodo, estado, page)
	if err != nil {
		return responderError(c, err)
	}
	resp := dto.OKPaginado(list, pagination)
	resp.Filtros = fiber.Map{"periodo": periodo, "estado": estado}
	return c.JSON(resp)
}

// GetByID GET /api/cuentas/:id — cuenta con sus detalles.
func (h *CuentaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("cuenta no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// Crear POST /api/cuentas — abre una cuenta (transaccional).
func (h *CuentaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCuentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	if in.Cliente == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cliente es requerido"))
	}
	id, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("cuenta creada", fiber.Map{"id": id}))
}

// Editar PATCH /api/cuentas/:id — reemplaza cabecera y líneas, todo o nada.
func (h *CuentaHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	var in dto.EditarCuentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido"))
	}
	out, err := h.uc.Editar(c.UserContext(), int64(id), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("cuenta actualizada", out))
}

// Pagar PATCH /api/cuentas/:id/pagar — liquida la cuenta.
func (h *CuentaHandler) Pagar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	res, err := h.uc.Pagar(c.UserContext(), int64(id))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("cuenta pagada", fiber.Map{
		"mesa_id":       res.MesaID,
		"mesa_liberada": res.MesaLiberada,
	}))
}

// Recibo GET /api/cuentas/:id/recibo — comprobante PDF.
func (h *CuentaHandler) Recibo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("id inválido"))
	}
	pdf, err := h.uc.Recibo(c.UserContext(), int64(id))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="cuenta-%d.pdf"`, id))
	return c.Send(pdf)
}
