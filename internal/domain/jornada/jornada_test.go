package jornada

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instante construye un tiempo en hora de negocio.
func instante(t *testing.T, valor string) time.Time {
	t.Helper()
	tt, err := time.ParseInLocation("2006-01-02 15:04", valor, Lugar())
	require.NoError(t, err)
	return tt
}

// La fecha de negocio se deriva de la zona del local, no del reloj UTC:
// las 03:00 UTC del día 2 todavía son día 1 en El Salvador (UTC-6).
func TestFecha_DerivaDeZonaDelNegocio(t *testing.T) {
	utc := time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-01-01", FechaString(utc))

	fecha := Fecha(utc)
	assert.Equal(t, 0, fecha.Hour())
	assert.Equal(t, Lugar(), fecha.Location())
}

func TestFecha_MediodiaLocalNoCambiaDeDia(t *testing.T) {
	local := instante(t, "2026-05-15 12:30")
	assert.Equal(t, "2026-05-15", FechaString(local))
}

func TestRangoPeriodo(t *testing.T) {
	ahora := instante(t, "2026-03-10 14:00")
	hoy := instante(t, "2026-03-10 00:00")

	casos := []struct {
		periodo string
		desde   time.Time
		hasta   time.Time
	}{
		{PeriodoHoy, hoy, hoy.AddDate(0, 0, 1)},
		{PeriodoAyer, hoy.AddDate(0, 0, -1), hoy},
		{PeriodoSemana, hoy.AddDate(0, 0, -7), hoy.AddDate(0, 0, 1)},
		{PeriodoMes, hoy.AddDate(0, 0, -30), hoy.AddDate(0, 0, 1)},
		{PeriodoAnio, hoy.AddDate(0, 0, -365), hoy.AddDate(0, 0, 1)},
	}
	for _, c := range casos {
		t.Run(c.periodo, func(t *testing.T) {
			desde, hasta, filtrar, err := RangoPeriodo(c.periodo, ahora)
			require.NoError(t, err)
			assert.True(t, filtrar)
			assert.True(t, c.desde.Equal(desde), "desde: esperado %v, obtenido %v", c.desde, desde)
			assert.True(t, c.hasta.Equal(hasta), "hasta: esperado %v, obtenido %v", c.hasta, hasta)
		})
	}
}

func TestRangoPeriodo_TodoNoFiltra(t *testing.T) {
	_, _, filtrar, err := RangoPeriodo(PeriodoTodo, Ahora())
	require.NoError(t, err)
	assert.False(t, filtrar)

	// Cadena vacía equivale a "todo" (query param ausente).
	_, _, filtrar, err = RangoPeriodo("", Ahora())
	require.NoError(t, err)
	assert.False(t, filtrar)
}

func TestRangoPeriodo_Desconocido(t *testing.T) {
	_, _, _, err := RangoPeriodo("quincena", Ahora())
	assert.Error(t, err)
}

// El turno cruza la medianoche: 18:00–06:00 del día siguiente.
func TestRangoTurno(t *testing.T) {
	casos := []struct {
		nombre string
		ahora  string
		desde  string
		hasta  string
	}{
		// Madrugada: el turno empezó ayer.
		{"madrugada", "2026-03-10 02:30", "2026-03-09 18:00", "2026-03-10 06:00"},
		// Noche: el turno corre hasta mañana.
		{"noche", "2026-03-10 23:15", "2026-03-10 18:00", "2026-03-11 06:00"},
		// Apertura exacta.
		{"apertura", "2026-03-10 18:00", "2026-03-10 18:00", "2026-03-11 06:00"},
		// Local cerrado: se reporta el turno que cerró a las 06:00 de hoy.
		{"cerrado", "2026-03-10 12:00", "2026-03-09 18:00", "2026-03-10 06:00"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			desde, hasta := RangoTurno(instante(t, c.ahora))
			assert.True(t, instante(t, c.desde).Equal(desde), "desde: obtenido %v", desde)
			assert.True(t, instante(t, c.hasta).Equal(hasta), "hasta: obtenido %v", hasta)
		})
	}
}
