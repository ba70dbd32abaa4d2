package dto

import "time"

// CrearMesaRequest alta de mesa. Estado opcional, por defecto disponible.
type CrearMesaRequest struct {
	NumeroMesa int    `json:"numero_mesa"`
	Estado     string `json:"estado"`
}

// EditarMesaRequest actualización parcial de número y/o estado.
type EditarMesaRequest struct {
	NumeroMesa *int    `json:"numero_mesa"`
	Estado     *string `json:"estado"`
}

// MesaResponse mesa en respuestas.
type MesaResponse struct {
	ID          int64     `json:"id"`
	NumeroMesa  int       `json:"numero_mesa"`
	Estado      string    `json:"estado"`
	FechaCreado time.Time `json:"fecha_creado"`
}
