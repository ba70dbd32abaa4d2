package entity

import "time"

// Estados de mesa. El estado es un hecho derivado: ocupada mientras exista
// al menos una cuenta pendiente que la referencie.
const (
	MesaDisponible = "disponible"
	MesaOcupada    = "ocupada"
)

// Mesa representa una mesa física del local.
type Mesa struct {
	ID          int64
	NumeroMesa  int
	Estado      string
	FechaCreado time.Time
}

// EstadoMesaValido valida el conjunto cerrado de estados de mesa.
func EstadoMesaValido(estado string) bool {
	return estado == MesaDisponible || estado == MesaOcupada
}
