package cuentas

import (
	"context"

	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// ResultadoPago describe el efecto de liquidar una cuenta.
type ResultadoPago struct {
	MesaID       *int64
	MesaLiberada bool
}

// Pagar liquida una cuenta: pendiente -> pagado, y libera la mesa si era la
// última cuenta pendiente sobre ella. El UPDATE condicional sobre el estado
// es el guard contra doble liquidación; la mesa se bloquea (FOR UPDATE)
// antes del conteo para que dos pagos concurrentes sobre la misma mesa se
// serialicen y el conteo-y-liberación sea correcto.
func (uc *UseCase) Pagar(ctx context.Context, id int64) (ResultadoPago, error) {
	var res ResultadoPago

	err := uc.tx.Run(ctx, func(cuentaRepo repository.CuentaRepository, mesaRepo repository.MesaRepository) error {
		mesaID, ok, err := cuentaRepo.MarcarPagada(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrCuentaNoLiquidable
		}
		res.MesaID = mesaID

		if mesaID == nil {
			return nil
		}
		mesa, err := mesaRepo.GetForUpdate(*mesaID)
		if err != nil {
			return err
		}
		if mesa == nil {
			// La mesa fue eliminada con la cuenta aún abierta; nada que liberar.
			return nil
		}
		pendientes, err := cuentaRepo.CountPendientesPorMesa(*mesaID)
		if err != nil {
			return err
		}
		if pendientes == 0 {
			if err := mesaRepo.ActualizarEstado(*mesaID, entity.MesaDisponible); err != nil {
				return err
			}
			res.MesaLiberada = true
		}
		return nil
	})
	if err != nil {
		return ResultadoPago{}, err
	}
	return res, nil
}
