package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los guards de liquidación se detectan por filas afectadas, no por excepciones.
var (
	ErrNoEncontrado       = errors.New("recurso no encontrado")
	ErrEntradaInvalida    = errors.New("entrada inválida")
	ErrDuplicado          = errors.New("recurso duplicado")
	ErrNoAutorizado       = errors.New("no autorizado")
	ErrCredenciales       = errors.New("credenciales incorrectas")
	ErrCuentaNoLiquidable = errors.New("cuenta no encontrada o ya pagada")
	ErrCuentaNoEditable   = errors.New("cuenta no encontrada o ya pagada")
	ErrCompraNoLiquidable = errors.New("compra no encontrada o ya pagada")
	ErrReferenciaInvalida = errors.New("referencia a producto inexistente")
	ErrMesaConCuentas     = errors.New("la mesa tiene cuentas pendientes asociadas")
)
