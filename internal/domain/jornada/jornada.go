// Package jornada centraliza el tiempo de negocio: las fechas de los
// registros se calculan en la zona horaria del local (America/El_Salvador,
// UTC-6 sin horario de verano), nunca con el reloj del servidor. También
// resuelve los rangos de los filtros por periodo y el corte de turno
// 18:00–06:00, como funciones puras enlazables por parámetro en SQL.
package jornada

import (
	"fmt"
	"time"
)

// Zona horaria del negocio.
const Zona = "America/El_Salvador"

// Periodos de filtrado admitidos.
const (
	PeriodoHoy    = "hoy"
	PeriodoAyer   = "ayer"
	PeriodoSemana = "semana"
	PeriodoMes    = "mes"
	PeriodoAnio   = "año"
	PeriodoTurno  = "turno"
	PeriodoTodo   = "todo"
)

var lugar = cargarLugar()

func cargarLugar() *time.Location {
	loc, err := time.LoadLocation(Zona)
	if err != nil {
		// El Salvador no tiene horario de verano: UTC-6 fijo es equivalente.
		return time.FixedZone("CST", -6*60*60)
	}
	return loc
}

// Lugar devuelve la time.Location del negocio.
func Lugar() *time.Location { return lugar }

// Ahora devuelve el instante actual en hora del negocio.
func Ahora() time.Time { return time.Now().In(lugar) }

// Fecha trunca un instante a la fecha de negocio (medianoche en la zona
// del local). Es la fecha que se persiste en fecha_creado.
func Fecha(t time.Time) time.Time {
	tt := t.In(lugar)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, lugar)
}

// FechaString devuelve la fecha de negocio en formato "2006-01-02".
func FechaString(t time.Time) string {
	return Fecha(t).Format("2006-01-02")
}

// RangoPeriodo traduce un nombre de periodo al rango semiabierto
// [desde, hasta) en hora de negocio. Para "todo" devuelve filtrar=false:
// el llamador omite la condición de fecha. Nunca interpolar estos valores
// en el SQL: enlazarlos siempre como parámetros.
func RangoPeriodo(periodo string, ahora time.Time) (desde, hasta time.Time, filtrar bool, err error) {
	hoy := Fecha(ahora)
	manana := hoy.AddDate(0, 0, 1)

	switch periodo {
	case PeriodoHoy:
		return hoy, manana, true, nil
	case PeriodoAyer:
		return hoy.AddDate(0, 0, -1), hoy, true, nil
	case PeriodoSemana:
		return hoy.AddDate(0, 0, -7), manana, true, nil
	case PeriodoMes:
		return hoy.AddDate(0, 0, -30), manana, true, nil
	case PeriodoAnio:
		return hoy.AddDate(0, 0, -365), manana, true, nil
	case PeriodoTurno:
		desde, hasta = RangoTurno(ahora)
		return desde, hasta, true, nil
	case PeriodoTodo, "":
		return time.Time{}, time.Time{}, false, nil
	default:
		return time.Time{}, time.Time{}, false, fmt.Errorf("periodo desconocido: %q", periodo)
	}
}

// RangoTurno devuelve el turno de atención vigente para un instante dado.
// El turno corre de 18:00 a 06:00 del día siguiente:
//   - antes de las 06:00, el turno empezó ayer a las 18:00;
//   - de 18:00 en adelante, el turno corre hasta mañana a las 06:00;
//   - entre 06:00 y 18:00 (local cerrado) se reporta el turno que terminó
//     a las 06:00 de hoy.
func RangoTurno(ahora time.Time) (desde, hasta time.Time) {
	tt := ahora.In(lugar)
	hoy := Fecha(tt)

	apertura := func(dia time.Time) time.Time { return dia.Add(18 * time.Hour) }
	cierre := func(dia time.Time) time.Time { return dia.Add(6 * time.Hour) }

	switch {
	case tt.Hour() < 6:
		return apertura(hoy.AddDate(0, 0, -1)), cierre(hoy)
	case tt.Hour() >= 18:
		return apertura(hoy), cierre(hoy.AddDate(0, 0, 1))
	default:
		return apertura(hoy.AddDate(0, 0, -1)), cierre(hoy)
	}
}
