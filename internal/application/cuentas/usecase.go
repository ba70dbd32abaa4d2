package cuentas

import (
	"time"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// UseCase es el motor de cuentas: creación, edición, liquidación y lecturas.
// Las operaciones de varias sentencias corren dentro del TxRunner; las
// lecturas usan los repos directos sobre el pool.
type UseCase struct {
	tx         TxRunner
	cuentaRepo repository.CuentaRepository
	mesaRepo   repository.MesaRepository
	recibos    GeneradorRecibo
	reloj      func() time.Time
}

// NewUseCase construye el motor de cuentas.
func NewUseCase(tx TxRunner, cuentaRepo repository.CuentaRepository, mesaRepo repository.MesaRepository, recibos GeneradorRecibo) *UseCase {
	return &UseCase{
		tx:         tx,
		cuentaRepo: cuentaRepo,
		mesaRepo:   mesaRepo,
		recibos:    recibos,
		reloj:      jornada.Ahora,
	}
}

// ListPendientes lista las cuentas abiertas, más recientes primero.
func (uc *UseCase) ListPendientes(page dto.PageRequest) ([]dto.CuentaResponse, dto.Pagination, error) {
	page.Normalizar(10)
	total, err := uc.cuentaRepo.CountPendientes()
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	list, err := uc.cuentaRepo.ListPendientes(page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return toCuentaResponses(list), dto.NewPagination(page.Page, page.Limit, total), nil
}

// Historial lista cuentas por periodo de negocio y estado. El periodo se
// traduce a un rango [desde, hasta) en jornada y se enlaza como parámetro.
func (uc *UseCase) Historial(periodo, estado string, page dto.PageRequest) ([]dto.CuentaResponse, dto.Pagination, error) {
	page.Normalizar(12)

	desde, hasta, filtrar, err := jornada.RangoPeriodo(periodo, uc.reloj())
	if err != nil {
		return nil, dto.Pagination{}, domain.ErrEntradaInvalida
	}
	if estado != "" && estado != "todo" && !entity.EstadoCuentaValido(estado) {
		return nil, dto.Pagination{}, domain.ErrEntradaInvalida
	}

	filtro := repository.FiltroHistorial{Desde: desde, Hasta: hasta, Filtrar: filtrar, Estado: estado}
	total, err := uc.cuentaRepo.CountHistorial(filtro)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	list, err := uc.cuentaRepo.ListHistorial(filtro, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return toCuentaResponses(list), dto.NewPagination(page.Page, page.Limit, total), nil
}

// GetByID devuelve la cuenta con sus detalles, o nil si no existe.
func (uc *UseCase) GetByID(id int64) (*dto.CuentaConDetallesResponse, error) {
	cuenta, err := uc.cuentaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, nil
	}
	detalles, err := uc.cuentaRepo.ListDetalles(id)
	if err != nil {
		return nil, err
	}
	out := &dto.CuentaConDetallesResponse{
		CuentaResponse: toCuentaResponse(cuenta),
		Detalles:       make([]dto.DetalleCuentaResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, dto.DetalleCuentaResponse{
			ID:                 d.ID,
			CuentaID:           d.CuentaID,
			ProductoID:         d.ProductoID,
			CantidadVendida:    d.CantidadVendida,
			PrecioCompraActual: d.PrecioCompraActual,
			PrecioVenta:        d.PrecioVenta,
			PromocionID:        d.PromocionID,
			FechaCreado:        d.FechaCreado,
			Descripcion:        d.Descripcion,
			Presentacion:       d.Presentacion,
		})
	}
	return out, nil
}

// validarDetalles rechaza líneas con cantidades o precios fuera de rango.
func validarDetalles(detalles []dto.DetalleCuentaRequest) error {
	for _, d := range detalles {
		if d.ProductoID <= 0 || d.CantidadVendida < 1 {
			return domain.ErrEntradaInvalida
		}
		if d.PrecioVenta.IsNegative() || d.PrecioCompraActual.IsNegative() {
			return domain.ErrEntradaInvalida
		}
	}
	return nil
}

func aDetalles(cuentaID int64, detalles []dto.DetalleCuentaRequest, fecha time.Time) []entity.CuentaDetalle {
	out := make([]entity.CuentaDetalle, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, entity.CuentaDetalle{
			CuentaID:           cuentaID,
			ProductoID:         d.ProductoID,
			CantidadVendida:    d.CantidadVendida,
			PrecioCompraActual: d.PrecioCompraActual,
			PrecioVenta:        d.PrecioVenta,
			PromocionID:        d.PromocionID,
			FechaCreado:        fecha,
		})
	}
	return out
}

func toCuentaResponse(c *entity.Cuenta) dto.CuentaResponse {
	return dto.CuentaResponse{
		ID:          c.ID,
		Cliente:     c.Cliente,
		Total:       c.Total,
		Estado:      c.Estado,
		TipoCuenta:  c.TipoCuenta,
		MesaID:      c.MesaID,
		NumeroMesa:  c.NumeroMesa,
		FechaCreado: c.FechaCreado,
	}
}

func toCuentaResponses(list []*entity.Cuenta) []dto.CuentaResponse {
	out := make([]dto.CuentaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCuentaResponse(c))
	}
	return out
}
