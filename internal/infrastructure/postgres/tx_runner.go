package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lastonitas/cerveceria-api/internal/application/compras"
	"github.com/lastonitas/cerveceria-api/internal/application/cuentas"
	"github.com/lastonitas/cerveceria-api/internal/application/usecase"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

var _ cuentas.TxRunner = (*TxRunner)(nil)
var _ compras.TxRunner = (*TxRunner)(nil)
var _ usecase.GastosTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con repos de cuentas y mesas (liquidación,
// creación y edición de cuentas) y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	cuentaRepo repository.CuentaRepository,
	mesaRepo repository.MesaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cuentaRepo := NewCuentaRepository(tx)
	mesaRepo := NewMesaRepository(tx)

	if err := fn(cuentaRepo, mesaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCompras inicia una transacción con repos de compras y productos
// (liquidación de compras con ingreso de stock).
func (r *TxRunner) RunCompras(ctx context.Context, fn func(
	compraRepo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	compraRepo := NewCompraRepository(tx)
	productoRepo := NewProductoRepository(tx)

	if err := fn(compraRepo, productoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunGastos inicia una transacción con el repo de gastos (alta y edición de
// cabecera más detalles).
func (r *TxRunner) RunGastos(ctx context.Context, fn func(
	gastoRepo repository.GastoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewGastoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
