package usecase

import (
	"time"

	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// DashboardUseCase arma las métricas agregadas del tablero.
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	reloj func() time.Time
}

// NewDashboardUseCase construye el módulo de dashboard.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, reloj: jornada.Ahora}
}

// Resumen devuelve las métricas del periodo: inventario, ventas, mesas,
// top de productos y ganancias. El periodo se traduce con jornada.
func (uc *DashboardUseCase) Resumen(periodo string) (*dto.DashboardResponse, error) {
	desde, hasta, filtrar, err := jornada.RangoPeriodo(periodo, uc.reloj())
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	rango := repository.RangoFechas{Desde: desde, Hasta: hasta, Filtrar: filtrar}

	productos, err := uc.repo.ResumenProductos()
	if err != nil {
		return nil, err
	}
	ventas, err := uc.repo.VentasPeriodo(rango)
	if err != nil {
		return nil, err
	}
	mesas, err := uc.repo.ResumenMesas()
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopProductos(rango, 5)
	if err != nil {
		return nil, err
	}
	ganancias, err := uc.repo.Ganancias(rango)
	if err != nil {
		return nil, err
	}
	pendientes, err := uc.repo.CountCuentasPendientes()
	if err != nil {
		return nil, err
	}

	topDTO := make([]dto.ProductoTopDTO, 0, len(top))
	for _, t := range top {
		topDTO = append(topDTO, dto.ProductoTopDTO{
			Descripcion:  t.Descripcion,
			Presentacion: t.Presentacion,
			TotalVendido: t.TotalVendido,
			Ingresos:     t.Ingresos,
		})
	}
	return &dto.DashboardResponse{
		Productos: dto.ResumenProductosDTO{
			TotalProductos: productos.TotalProductos,
			Activos:        productos.Activos,
			StockCritico:   productos.StockCritico,
		},
		VentasPeriodo: dto.VentasPeriodoDTO{
			VentasPeriodo:   ventas.Ventas,
			IngresosPeriodo: ventas.Ingresos,
		},
		Mesas: dto.ResumenMesasDTO{
			MesasTotal:    mesas.MesasTotal,
			MesasOcupadas: mesas.MesasOcupadas,
		},
		StockCritico: productos.StockCritico,
		TopProductos: topDTO,
		Ganancias: dto.GananciasDTO{
			Ingresos: ganancias.Ingresos,
			Costos:   ganancias.Costos,
			Ganancia: ganancias.Ganancia,
		},
		CuentasPendientes: pendientes,
	}, nil
}

// VentasRecientes lista las cuentas de los últimos días, paginadas.
func (uc *DashboardUseCase) VentasRecientes(dias int, page dto.PageRequest) ([]dto.VentaRecienteDTO, dto.Pagination, error) {
	if dias <= 0 {
		dias = 7
	}
	page.Normalizar(10)
	total, err := uc.repo.CountVentasRecientes(dias)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	list, err := uc.repo.VentasRecientes(dias, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.VentaRecienteDTO, 0, len(list))
	for _, v := range list {
		out = append(out, dto.VentaRecienteDTO{
			ID:          v.ID,
			Cliente:     v.Cliente,
			Total:       v.Total,
			Estado:      v.Estado,
			TipoCuenta:  v.TipoCuenta,
			Items:       v.Items,
			FechaCreado: v.FechaCreado,
			Subtotal:    v.Subtotal,
		})
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}
