package cuentas

import (
	"context"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// Editar reemplaza cabecera y detalles de una cuenta pendiente, todo o nada:
// una línea con producto inexistente revierte la transacción completa y la
// cuenta conserva sus líneas previas. El total se recalcula siempre de las
// líneas insertadas, nunca del cliente. Detalles vacíos son válidos (total 0).
func (uc *UseCase) Editar(ctx context.Context, id int64, in dto.EditarCuentaRequest) (*dto.CuentaEditadaResponse, error) {
	if err := validarDetalles(in.Detalles); err != nil {
		return nil, err
	}

	fecha := jornada.Fecha(uc.reloj())
	var out *dto.CuentaEditadaResponse

	err := uc.tx.Run(ctx, func(cuentaRepo repository.CuentaRepository, mesaRepo repository.MesaRepository) error {
		// El guard estado='pendiente' va dentro del UPDATE: cero filas
		// afectadas significa cuenta inexistente o ya pagada.
		ok, err := cuentaRepo.ActualizarHeaderPendiente(id, in.Cliente, in.TipoCuenta, in.MesaID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrCuentaNoEditable
		}

		if err := cuentaRepo.DeleteDetalles(id); err != nil {
			return err
		}
		detalles := aDetalles(id, in.Detalles, fecha)
		for i := range detalles {
			if err := cuentaRepo.InsertDetalle(&detalles[i]); err != nil {
				return err
			}
		}

		total := entity.TotalDetalles(detalles)
		if err := cuentaRepo.ActualizarTotal(id, total); err != nil {
			return err
		}

		// Si la edición asigna mesa, se marca ocupada sin mirar su estado actual.
		if in.MesaID != nil {
			if err := mesaRepo.ActualizarEstado(*in.MesaID, entity.MesaOcupada); err != nil {
				return err
			}
		}

		out = &dto.CuentaEditadaResponse{
			ID:        id,
			Cliente:   in.Cliente,
			Total:     total,
			Productos: len(in.Detalles),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
