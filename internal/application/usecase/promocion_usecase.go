package usecase

import (
	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// PromocionUseCase gestiona promociones de precio sobre productos.
type PromocionUseCase struct {
	promoRepo    repository.PromocionRepository
	productoRepo repository.ProductoRepository
}

// NewPromocionUseCase construye el módulo de promociones.
func NewPromocionUseCase(promoRepo repository.PromocionRepository, productoRepo repository.ProductoRepository) *PromocionUseCase {
	return &PromocionUseCase{promoRepo: promoRepo, productoRepo: productoRepo}
}

// ListActivas lista las promociones activas.
func (uc *PromocionUseCase) ListActivas() ([]dto.PromocionResponse, error) {
	list, err := uc.promoRepo.ListActivas()
	if err != nil {
		return nil, err
	}
	return toPromocionResponses(list), nil
}

// ListPorProductos lista promociones activas de los productos indicados
// (consulta del POS al armar una cuenta).
func (uc *PromocionUseCase) ListPorProductos(ids []int64) ([]dto.PromocionResponse, error) {
	if len(ids) == 0 {
		return []dto.PromocionResponse{}, nil
	}
	list, err := uc.promoRepo.ListActivasPorProductos(ids)
	if err != nil {
		return nil, err
	}
	return toPromocionResponses(list), nil
}

// ListPorProducto lista el historial de promociones de un producto.
func (uc *PromocionUseCase) ListPorProducto(productoID int64) ([]dto.PromocionResponse, error) {
	list, err := uc.promoRepo.ListPorProducto(productoID)
	if err != nil {
		return nil, err
	}
	return toPromocionResponses(list), nil
}

// GetByID devuelve la promoción, o nil si no existe.
func (uc *PromocionUseCase) GetByID(id int64) (*dto.PromocionResponse, error) {
	p, err := uc.promoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toPromocionResponse(p)
	return &out, nil
}

// Crear da de alta una promoción para un producto existente.
func (uc *PromocionUseCase) Crear(in dto.CrearPromocionRequest) (*dto.PromocionResponse, error) {
	if in.NombrePromocion == "" || in.ProductoID <= 0 || in.NuevoPrecioVenta.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if in.FechaInicio != nil && in.FechaFin != nil && in.FechaFin.Before(*in.FechaInicio) {
		return nil, domain.ErrEntradaInvalida
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrReferenciaInvalida
	}
	p := &entity.Promocion{
		NombrePromocion:  in.NombrePromocion,
		ProductoID:       in.ProductoID,
		NuevoPrecioVenta: in.NuevoPrecioVenta,
		Activo:           true,
		FechaInicio:      in.FechaInicio,
		FechaFin:         in.FechaFin,
		FechaCreado:      jornada.Fecha(jornada.Ahora()),
	}
	if err := uc.promoRepo.Create(p); err != nil {
		return nil, err
	}
	out := toPromocionResponse(p)
	return &out, nil
}

// Editar reemplaza los datos de la promoción; Activo nil conserva el actual.
func (uc *PromocionUseCase) Editar(id int64, in dto.EditarPromocionRequest) (*dto.PromocionResponse, error) {
	if in.NombrePromocion == "" || in.ProductoID <= 0 || in.NuevoPrecioVenta.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if in.FechaInicio != nil && in.FechaFin != nil && in.FechaFin.Before(*in.FechaInicio) {
		return nil, domain.ErrEntradaInvalida
	}
	p, err := uc.promoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.ProductoID != p.ProductoID {
		producto, err := uc.productoRepo.GetByID(in.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrReferenciaInvalida
		}
	}
	p.NombrePromocion = in.NombrePromocion
	p.ProductoID = in.ProductoID
	p.NuevoPrecioVenta = in.NuevoPrecioVenta
	p.FechaInicio = in.FechaInicio
	p.FechaFin = in.FechaFin
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	if err := uc.promoRepo.Update(p); err != nil {
		return nil, err
	}
	out := toPromocionResponse(p)
	return &out, nil
}

// Eliminar desactiva la promoción (borrado lógico).
func (uc *PromocionUseCase) Eliminar(id int64) error {
	ok, err := uc.promoRepo.Desactivar(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

func toPromocionResponse(p *entity.Promocion) dto.PromocionResponse {
	return dto.PromocionResponse{
		ID:               p.ID,
		NombrePromocion:  p.NombrePromocion,
		ProductoID:       p.ProductoID,
		NuevoPrecioVenta: p.NuevoPrecioVenta,
		Activo:           p.Activo,
		FechaInicio:      p.FechaInicio,
		FechaFin:         p.FechaFin,
		FechaCreado:      p.FechaCreado,
	}
}

func toPromocionResponses(list []*entity.Promocion) []dto.PromocionResponse {
	out := make([]dto.PromocionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPromocionResponse(p))
	}
	return out
}
