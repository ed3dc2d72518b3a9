package repository

import (
	"context"

	"github.com/windwireless/operations-api/internal/domain/entity"
)

// ReservationRepository define el puerto de lectura del feed de reservas:
// cantidades por modelo provenientes de documentos comerciales confirmados
// pero aún no despachados.
type ReservationRepository interface {
	// ListOutstanding devuelve las reservas pendientes agregadas por modelo.
	ListOutstanding(ctx context.Context) ([]entity.Reservation, error)
}
