package cuentas

import (
	"context"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// Crear abre una cuenta nueva. Todo ocurre en una transacción: ocupación de
// mesa, cabecera y detalles. El estado se fuerza a pendiente y la fecha es
// la fecha de negocio (El Salvador), nunca la del cliente ni la UTC del
// servidor. El total enviado por el cliente se ignora y se recalcula de los
// detalles.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearCuentaRequest) (int64, error) {
	if err := validarDetalles(in.Detalles); err != nil {
		return 0, err
	}

	fecha := jornada.Fecha(uc.reloj())
	var cuentaID int64

	err := uc.tx.Run(ctx, func(cuentaRepo repository.CuentaRepository, mesaRepo repository.MesaRepository) error {
		if in.MesaID != nil {
			mesa, err := mesaRepo.GetByID(*in.MesaID)
			if err != nil {
				return err
			}
			if mesa == nil {
				return domain.ErrReferenciaInvalida
			}
			// Varias cuentas pueden compartir mesa: si ya está ocupada no es error.
			if mesa.Estado == entity.MesaDisponible {
				if err := mesaRepo.ActualizarEstado(mesa.ID, entity.MesaOcupada); err != nil {
					return err
				}
			}
		}

		detalles := aDetalles(0, in.Detalles, fecha)
		cuenta := &entity.Cuenta{
			Cliente:     in.Cliente,
			Total:       entity.TotalDetalles(detalles),
			Estado:      entity.CuentaPendiente,
			TipoCuenta:  in.TipoCuenta,
			MesaID:      in.MesaID,
			FechaCreado: fecha,
		}
		if err := cuentaRepo.Create(cuenta); err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].CuentaID = cuenta.ID
			if err := cuentaRepo.InsertDetalle(&detalles[i]); err != nil {
				return err
			}
		}
		cuentaID = cuenta.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cuentaID, nil
}
