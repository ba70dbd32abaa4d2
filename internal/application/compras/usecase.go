package compras

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// UseCase gestiona compras a proveedor: alta, lecturas y liquidación con
// ingreso de stock.
type UseCase struct {
	tx         TxRunner
	compraRepo repository.CompraRepository
	reloj      func() time.Time
}

// NewUseCase construye el módulo de compras.
func NewUseCase(tx TxRunner, compraRepo repository.CompraRepository) *UseCase {
	return &UseCase{
		tx:         tx,
		compraRepo: compraRepo,
		reloj:      jornada.Ahora,
	}
}

// Crear registra una compra con sus detalles en una transacción. El total se
// recalcula de las líneas (cantidad x precio de compra); el estado por
// defecto es pendiente.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearCompraRequest) (int64, error) {
	if in.Proveedor == "" {
		return 0, domain.ErrEntradaInvalida
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.CompraPendiente
	}
	if !entity.EstadoCompraValido(estado) {
		return 0, domain.ErrEntradaInvalida
	}
	for _, d := range in.Detalles {
		if d.ProductoID <= 0 || d.CantidadVendida < 1 {
			return 0, domain.ErrEntradaInvalida
		}
		if d.PrecioCompraActual.IsNegative() || d.PrecioVenta.IsNegative() {
			return 0, domain.ErrEntradaInvalida
		}
	}

	fecha := jornada.Fecha(uc.reloj())
	total := decimal.Zero
	for _, d := range in.Detalles {
		total = total.Add(d.PrecioCompraActual.Mul(decimal.NewFromInt(int64(d.CantidadVendida))))
	}

	var compraID int64
	err := uc.tx.RunCompras(ctx, func(compraRepo repository.CompraRepository, _ repository.ProductoRepository) error {
		compra := &entity.Compra{
			Proveedor:   in.Proveedor,
			Direccion:   in.Direccion,
			Total:       total,
			Estado:      estado,
			FechaCreado: fecha,
		}
		if err := compraRepo.Create(compra); err != nil {
			return err
		}
		for _, d := range in.Detalles {
			det := &entity.CompraDetalle{
				CompraID:           compra.ID,
				ProductoID:         d.ProductoID,
				CantidadVendida:    d.CantidadVendida,
				PrecioCompraActual: d.PrecioCompraActual,
				PrecioVenta:        d.PrecioVenta,
				FechaCreado:        fecha,
			}
			if err := compraRepo.InsertDetalle(det); err != nil {
				return err
			}
		}
		compraID = compra.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return compraID, nil
}

// Pagar liquida una compra y acredita el stock de cada línea, exactamente una
// vez: el UPDATE condicional sobre el estado rechaza una segunda liquidación
// antes de tocar inventario.
func (uc *UseCase) Pagar(ctx context.Context, id int64) error {
	return uc.tx.RunCompras(ctx, func(compraRepo repository.CompraRepository, productoRepo repository.ProductoRepository) error {
		ok, err := compraRepo.MarcarPagada(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrCompraNoLiquidable
		}
		detalles, err := compraRepo.ListDetalles(id)
		if err != nil {
			return err
		}
		for _, d := range detalles {
			if err := productoRepo.IncrementarStock(d.ProductoID, d.CantidadVendida); err != nil {
				return err
			}
		}
		return nil
	})
}

// List lista compras, más recientes primero.
func (uc *UseCase) List(page dto.PageRequest) ([]dto.CompraResponse, dto.Pagination, error) {
	page.Normalizar(10)
	total, err := uc.compraRepo.Count()
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	list, err := uc.compraRepo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.CompraResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompraResponse(c))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// GetByID devuelve la compra con sus detalles, o nil si no existe.
func (uc *UseCase) GetByID(id int64) (*dto.CompraConDetallesResponse, error) {
	compra, err := uc.compraRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, nil
	}
	detalles, err := uc.compraRepo.ListDetalles(id)
	if err != nil {
		return nil, err
	}
	out := &dto.CompraConDetallesResponse{
		CompraResponse: toCompraResponse(compra),
		TotalDetalles:  len(detalles),
		Detalles:       make([]dto.DetalleCompraResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, dto.DetalleCompraResponse{
			ID:                 d.ID,
			CompraID:           d.CompraID,
			ProductoID:         d.ProductoID,
			CantidadVendida:    d.CantidadVendida,
			PrecioCompraActual: d.PrecioCompraActual,
			PrecioVenta:        d.PrecioVenta,
			FechaCreado:        d.FechaCreado,
			Descripcion:        d.Descripcion,
			Presentacion:       d.Presentacion,
		})
	}
	return out, nil
}

func toCompraResponse(c *entity.Compra) dto.CompraResponse {
	return dto.CompraResponse{
		ID:          c.ID,
		Proveedor:   c.Proveedor,
		Direccion:   c.Direccion,
		Total:       c.Total,
		Estado:      c.Estado,
		FechaCreado: c.FechaCreado,
	}
}
