package cuentas

import (
	"context"

	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repos atados a la tx.
// Commit si fn devuelve nil; Rollback en cualquier otro caso — ninguna
// operación de liquidación deja efectos parciales.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cuentaRepo repository.CuentaRepository,
		mesaRepo repository.MesaRepository,
	) error) error
}

// GeneradorRecibo produce el comprobante PDF de una cuenta.
type GeneradorRecibo interface {
	GenerarRecibo(ctx context.Context, cuenta *entity.Cuenta, detalles []*entity.CuentaDetalle) ([]byte, error)
}
