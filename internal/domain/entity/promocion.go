package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promocion sobreescribe el precio de venta de un producto durante una
// ventana de vigencia opcional. Las líneas de cuenta guardan el precio
// efectivamente cobrado (snapshot), no una referencia viva a este registro.
type Promocion struct {
	ID               int64
	NombrePromocion  string
	ProductoID       int64
	NuevoPrecioVenta decimal.Decimal
	Activo           bool
	FechaInicio      *time.Time
	FechaFin         *time.Time
	FechaCreado      time.Time
}

// VigenteEn indica si la promoción aplica en el instante dado: activa y
// dentro de la ventana [FechaInicio, FechaFin] cuando está definida.
func (p Promocion) VigenteEn(t time.Time) bool {
	if !p.Activo {
		return false
	}
	if p.FechaInicio != nil && t.Before(*p.FechaInicio) {
		return false
	}
	if p.FechaFin != nil && t.After(*p.FechaFin) {
		return false
	}
	return true
}
