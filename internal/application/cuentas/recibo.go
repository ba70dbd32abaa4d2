package cuentas

import (
	"context"

	"github.com/lastonitas/cerveceria-api/internal/domain"
)

// Recibo genera el comprobante PDF de una cuenta (pendiente o pagada).
func (uc *UseCase) Recibo(ctx context.Context, id int64) ([]byte, error) {
	cuenta, err := uc.cuentaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, domain.ErrNoEncontrado
	}
	detalles, err := uc.cuentaRepo.ListDetalles(id)
	if err != nil {
		return nil, err
	}
	return uc.recibos.GenerarRecibo(ctx, cuenta, detalles)
}
