package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
)

// responderError mapea errores de dominio al código HTTP y al sobre uniforme.
// Los errores no reconocidos se responden 500 con mensaje genérico para no
// filtrar detalles internos.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida),
		errors.Is(err, domain.ErrReferenciaInvalida),
		errors.Is(err, domain.ErrDuplicado),
		errors.Is(err, domain.ErrMesaConCuentas),
		errors.Is(err, domain.ErrCuentaNoLiquidable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo(err.Error()))
	case errors.Is(err, domain.ErrCredenciales),
		errors.Is(err, domain.ErrNoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo(err.Error()))
	case errors.Is(err, domain.ErrNoEncontrado),
		errors.Is(err, domain.ErrCuentaNoEditable),
		errors.Is(err, domain.ErrCompraNoLiquidable):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("error interno del servidor"))
	}
}
