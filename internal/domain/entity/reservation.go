package entity

import (
	"fmt"

	"github.com/windwireless/operations-api/internal/domain"
)

// Reservation demanda comprometida contra un modelo: cantidad de piezas
// prometidas por documentos comerciales confirmados pero aún no despachados.
// Es un agregado por modelo, no una referencia a piezas concretas.
type Reservation struct {
	Model    string
	Quantity int
}

// NewReservation construye una reserva validada (cantidad estrictamente positiva).
func NewReservation(model string, quantity int) (Reservation, error) {
	if model == "" {
		return Reservation{}, fmt.Errorf("%w: model vacío", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return Reservation{}, fmt.Errorf("%w: cantidad reservada %d (debe ser > 0)", domain.ErrInvalidInput, quantity)
	}
	return Reservation{Model: model, Quantity: quantity}, nil
}
