package usecase

import (
	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
	"github.com/lastonitas/cerveceria-api/pkg/normalizar"
)

// ProductoUseCase gestiona el catálogo de inventario.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el módulo de productos.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// List lista productos activos con búsqueda insensible a tildes y mayúsculas.
func (uc *ProductoUseCase) List(search string, page dto.PageRequest) ([]dto.ProductoResponse, dto.Pagination, error) {
	page.Normalizar(10)
	termino := normalizar.Termino(search)

	total, err := uc.repo.CountActivos(termino)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	list, err := uc.repo.ListActivos(termino, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return toProductoResponses(list), dto.NewPagination(page.Page, page.Limit, total), nil
}

// ListTodos lista todos los productos activos sin paginar (selectores del POS).
func (uc *ProductoUseCase) ListTodos() ([]dto.ProductoResponse, error) {
	list, err := uc.repo.ListTodosActivos()
	if err != nil {
		return nil, err
	}
	return toProductoResponses(list), nil
}

// GetByID devuelve el producto o nil si no existe.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toProductoResponse(p)
	return &out, nil
}

// Crear da de alta un producto activo.
func (uc *ProductoUseCase) Crear(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Descripcion == "" || in.Presentacion == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.CantidadDisponible.IsNegative() || in.PrecioCompra.IsNegative() || in.PrecioVenta.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.Producto{
		Descripcion:        in.Descripcion,
		Proveedor:          in.Proveedor,
		Presentacion:       in.Presentacion,
		CantidadDisponible: in.CantidadDisponible,
		CantidadMinima:     in.CantidadMinima,
		CantidadMaxima:     in.CantidadMaxima,
		PrecioCompra:       in.PrecioCompra,
		PrecioVenta:        in.PrecioVenta,
		Activo:             true,
		FechaCreado:        jornada.Fecha(jornada.Ahora()),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	out := toProductoResponse(p)
	return &out, nil
}

// Editar aplica una actualización parcial contra la lista cerrada de campos
// editables. Cuerpo sin campos es entrada inválida.
func (uc *ProductoUseCase) Editar(id int64, in dto.EditarProductoRequest) (*dto.ProductoResponse, error) {
	campos := repository.CamposProducto{
		Descripcion:        in.Descripcion,
		Proveedor:          in.Proveedor,
		Presentacion:       in.Presentacion,
		CantidadDisponible: in.CantidadDisponible,
		CantidadMinima:     in.CantidadMinima,
		CantidadMaxima:     in.CantidadMaxima,
		PrecioCompra:       in.PrecioCompra,
		PrecioVenta:        in.PrecioVenta,
	}
	if campos.Vacio() {
		return nil, domain.ErrEntradaInvalida
	}
	p, err := uc.repo.Update(id, campos)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	out := toProductoResponse(p)
	return &out, nil
}

// Toggle activa o desactiva el producto (borrado lógico explícito).
func (uc *ProductoUseCase) Toggle(id int64, in dto.ToggleProductoRequest) (*dto.ProductoResponse, error) {
	if in.Activo == nil {
		return nil, domain.ErrEntradaInvalida
	}
	p, err := uc.repo.SetActivo(id, *in.Activo)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	out := toProductoResponse(p)
	return &out, nil
}

// StockCritico lista productos ordenados por urgencia de reposición, con su
// nivel de alerta calculado.
func (uc *ProductoUseCase) StockCritico(limit int) ([]dto.ProductoStockResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	list, err := uc.repo.ListStockCritico(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoStockResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductoStockResponse{
			ID:                 p.ID,
			Descripcion:        p.Descripcion,
			Presentacion:       p.Presentacion,
			Proveedor:          p.Proveedor,
			CantidadDisponible: p.CantidadDisponible,
			CantidadMinima:     p.CantidadMinima,
			CantidadMaxima:     p.CantidadMaxima,
			PrecioVenta:        p.PrecioVenta,
			Status:             p.NivelStock(),
		})
	}
	return out, nil
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:                 p.ID,
		Descripcion:        p.Descripcion,
		Proveedor:          p.Proveedor,
		Presentacion:       p.Presentacion,
		CantidadDisponible: p.CantidadDisponible,
		CantidadMinima:     p.CantidadMinima,
		CantidadMaxima:     p.CantidadMaxima,
		PrecioCompra:       p.PrecioCompra,
		PrecioVenta:        p.PrecioVenta,
		FechaCreado:        p.FechaCreado,
		Activo:             p.Activo,
	}
}

func toProductoResponses(list []*entity.Producto) []dto.ProductoResponse {
	out := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out
}
