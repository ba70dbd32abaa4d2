package usecase

import (
	"context"
	"time"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// GastosTxRunner ejecuta fn dentro de una transacción con el repo de gastos
// atado a la tx. Alta y edición escriben cabecera y detalles juntas.
type GastosTxRunner interface {
	RunGastos(ctx context.Context, fn func(gastoRepo repository.GastoRepository) error) error
}

// GastoUseCase gestiona gastos operativos y su resolución.
type GastoUseCase struct {
	tx        GastosTxRunner
	gastoRepo repository.GastoRepository
	reloj     func() time.Time
}

// NewGastoUseCase construye el módulo de gastos.
func NewGastoUseCase(tx GastosTxRunner, gastoRepo repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{
		tx:        tx,
		gastoRepo: gastoRepo,
		reloj:     jornada.Ahora,
	}
}

// List lista gastos paginados, más recientes primero.
func (uc *GastoUseCase) List(page dto.PageRequest) ([]dto.GastoResponse, dto.Pagination, error) {
	page.Normalizar(10)
	total, err := uc.gastoRepo.Count()
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	list, err := uc.gastoRepo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.GastoResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toGastoResponse(g))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// ListTodos lista todos los gastos sin paginar (reportes).
func (uc *GastoUseCase) ListTodos() ([]dto.GastoResponse, error) {
	list, err := uc.gastoRepo.ListTodos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.GastoResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toGastoResponse(g))
	}
	return out, nil
}

// GetByID devuelve el gasto con sus detalles, o nil si no existe.
func (uc *GastoUseCase) GetByID(id int64) (*dto.GastoConDetallesResponse, error) {
	g, err := uc.gastoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	detalles, err := uc.gastoRepo.ListDetalles(id)
	if err != nil {
		return nil, err
	}
	out := &dto.GastoConDetallesResponse{
		GastoResponse: toGastoResponse(g),
		Detalles:      make([]dto.DetalleGastoResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, dto.DetalleGastoResponse{
			ProductoID:        d.ProductoID,
			CantidadConsumida: d.CantidadConsumida,
			PrecioUnitario:    d.PrecioUnitario,
			ValorTotal:        d.ValorTotal,
			Descripcion:       d.Descripcion,
			Presentacion:      d.Presentacion,
		})
	}
	return out, nil
}

// Crear registra un gasto pendiente con sus detalles en una transacción.
func (uc *GastoUseCase) Crear(ctx context.Context, in dto.CrearGastoRequest) (int64, error) {
	if in.Descripcion == "" || in.TipoGasto == "" || in.UsuarioID <= 0 {
		return 0, domain.ErrEntradaInvalida
	}
	if in.Total.IsNegative() {
		return 0, domain.ErrEntradaInvalida
	}
	for _, d := range in.Detalles {
		if d.ProductoID <= 0 || d.CantidadConsumida.IsNegative() {
			return 0, domain.ErrEntradaInvalida
		}
	}

	fecha := jornada.Fecha(uc.reloj())
	var gastoID int64
	err := uc.tx.RunGastos(ctx, func(gastoRepo repository.GastoRepository) error {
		g := &entity.Gasto{
			Descripcion: in.Descripcion,
			TipoGasto:   in.TipoGasto,
			UsuarioID:   in.UsuarioID,
			MesaID:      in.MesaID,
			Total:       in.Total,
			Estado:      entity.GastoPendiente,
			FechaCreado: fecha,
		}
		if err := gastoRepo.Create(g); err != nil {
			return err
		}
		for _, d := range in.Detalles {
			det := &entity.GastoDetalle{
				GastoID:           g.ID,
				ProductoID:        d.ProductoID,
				CantidadConsumida: d.CantidadConsumida,
				PrecioUnitario:    d.PrecioUnitario,
				ValorTotal:        d.ValorTotal,
				FechaCreado:       fecha,
			}
			if err := gastoRepo.InsertDetalle(det); err != nil {
				return err
			}
		}
		gastoID = g.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return gastoID, nil
}

// Editar reemplaza cabecera y detalles del gasto, todo o nada.
func (uc *GastoUseCase) Editar(ctx context.Context, id int64, in dto.EditarGastoRequest) error {
	if in.Descripcion == "" || in.TipoGasto == "" || in.Total.IsNegative() {
		return domain.ErrEntradaInvalida
	}
	for _, d := range in.Detalles {
		if d.ProductoID <= 0 || d.CantidadConsumida.IsNegative() {
			return domain.ErrEntradaInvalida
		}
	}

	fecha := jornada.Fecha(uc.reloj())
	return uc.tx.RunGastos(ctx, func(gastoRepo repository.GastoRepository) error {
		ok, err := gastoRepo.ActualizarCabecera(id, in.Descripcion, in.TipoGasto, in.Total)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNoEncontrado
		}
		if err := gastoRepo.DeleteDetalles(id); err != nil {
			return err
		}
		for _, d := range in.Detalles {
			det := &entity.GastoDetalle{
				GastoID:           id,
				ProductoID:        d.ProductoID,
				CantidadConsumida: d.CantidadConsumida,
				PrecioUnitario:    d.PrecioUnitario,
				ValorTotal:        d.ValorTotal,
				FechaCreado:       fecha,
			}
			if err := gastoRepo.InsertDetalle(det); err != nil {
				return err
			}
		}
		return nil
	})
}

// CambiarEstado resuelve un gasto como aprobado o rechazado. La transición es
// incondicional respecto al estado actual; solo se valida el estado destino.
func (uc *GastoUseCase) CambiarEstado(id int64, estado string) (*dto.GastoResponse, error) {
	if !entity.EstadoResolucionValido(estado) {
		return nil, domain.ErrEntradaInvalida
	}
	g, err := uc.gastoRepo.ActualizarEstado(id, estado, uc.reloj())
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNoEncontrado
	}
	out := toGastoResponse(g)
	return &out, nil
}

func toGastoResponse(g *entity.Gasto) dto.GastoResponse {
	return dto.GastoResponse{
		ID:              g.ID,
		Descripcion:     g.Descripcion,
		TipoGasto:       g.TipoGasto,
		UsuarioID:       g.UsuarioID,
		MesaID:          g.MesaID,
		Total:           g.Total,
		Estado:          g.Estado,
		FechaCreado:     g.FechaCreado,
		FechaModificado: g.FechaModificado,
		NombreUsuario:   g.NombreUsuario,
		NumeroMesa:      g.NumeroMesa,
	}
}
