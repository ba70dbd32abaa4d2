package usecase

import (
	"github.com/lastonitas/cerveceria-api/internal/application/dto"
	"github.com/lastonitas/cerveceria-api/internal/domain"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
	"github.com/lastonitas/cerveceria-api/internal/domain/jornada"
	"github.com/lastonitas/cerveceria-api/internal/domain/repository"
)

// MesaUseCase gestiona las mesas físicas del local. Toda lectura reconcilia
// primero el estado derivado contra las cuentas pendientes.
type MesaUseCase struct {
	mesaRepo   repository.MesaRepository
	cuentaRepo repository.CuentaRepository
}

// NewMesaUseCase construye el módulo de mesas.
func NewMesaUseCase(mesaRepo repository.MesaRepository, cuentaRepo repository.CuentaRepository) *MesaUseCase {
	return &MesaUseCase{mesaRepo: mesaRepo, cuentaRepo: cuentaRepo}
}

// List reconcilia y lista mesas, opcionalmente filtradas por estado.
func (uc *MesaUseCase) List(estado string, page dto.PageRequest) ([]dto.MesaResponse, dto.Pagination, error) {
	page.Normalizar(10)
	if estado != "" && !entity.EstadoMesaValido(estado) {
		return nil, dto.Pagination{}, domain.ErrEntradaInvalida
	}
	if err := uc.mesaRepo.Reconciliar(); err != nil {
		return nil, dto.Pagination{}, err
	}
	total, err := uc.mesaRepo.Count(estado)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	list, err := uc.mesaRepo.List(estado, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.MesaResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMesaResponse(m))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// GetByID reconcilia y devuelve la mesa, o nil si no existe.
func (uc *MesaUseCase) GetByID(id int64) (*dto.MesaResponse, error) {
	if err := uc.mesaRepo.Reconciliar(); err != nil {
		return nil, err
	}
	m, err := uc.mesaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	out := toMesaResponse(m)
	return &out, nil
}

// Crear da de alta una mesa. El número es único; el estado por defecto es
// disponible.
func (uc *MesaUseCase) Crear(in dto.CrearMesaRequest) (*dto.MesaResponse, error) {
	if in.NumeroMesa <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.MesaDisponible
	}
	if !entity.EstadoMesaValido(estado) {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.mesaRepo.GetByNumero(in.NumeroMesa)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	m := &entity.Mesa{
		NumeroMesa:  in.NumeroMesa,
		Estado:      estado,
		FechaCreado: jornada.Fecha(jornada.Ahora()),
	}
	if err := uc.mesaRepo.Create(m); err != nil {
		return nil, err
	}
	out := toMesaResponse(m)
	return &out, nil
}

// Editar actualiza número y/o estado. El número nuevo no puede chocar con
// otra mesa.
func (uc *MesaUseCase) Editar(id int64, in dto.EditarMesaRequest) (*dto.MesaResponse, error) {
	if in.NumeroMesa == nil && in.Estado == nil {
		return nil, domain.ErrEntradaInvalida
	}
	m, err := uc.mesaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.NumeroMesa != nil && *in.NumeroMesa != m.NumeroMesa {
		if *in.NumeroMesa <= 0 {
			return nil, domain.ErrEntradaInvalida
		}
		otra, err := uc.mesaRepo.GetByNumero(*in.NumeroMesa)
		if err != nil {
			return nil, err
		}
		if otra != nil {
			return nil, domain.ErrDuplicado
		}
		m.NumeroMesa = *in.NumeroMesa
	}
	if in.Estado != nil {
		if !entity.EstadoMesaValido(*in.Estado) {
			return nil, domain.ErrEntradaInvalida
		}
		m.Estado = *in.Estado
	}
	if err := uc.mesaRepo.Update(m); err != nil {
		return nil, err
	}
	out := toMesaResponse(m)
	return &out, nil
}

// Eliminar borra la mesa solo si ninguna cuenta pendiente la referencia.
func (uc *MesaUseCase) Eliminar(id int64) error {
	m, err := uc.mesaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNoEncontrado
	}
	pendientes, err := uc.cuentaRepo.CountPendientesPorMesa(id)
	if err != nil {
		return err
	}
	if pendientes > 0 {
		return domain.ErrMesaConCuentas
	}
	return uc.mesaRepo.Delete(id)
}

func toMesaResponse(m *entity.Mesa) dto.MesaResponse {
	return dto.MesaResponse{
		ID:          m.ID,
		NumeroMesa:  m.NumeroMesa,
		Estado:      m.Estado,
		FechaCreado: m.FechaCreado,
	}
}
