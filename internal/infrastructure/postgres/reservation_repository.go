package postgres

import (
	"context"
	"fmt"

	"github.com/windwireless/operations-api/internal/domain/entity"
	"github.com/windwireless/operations-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo adaptador read-only del feed de reservas: líneas de
// cotizaciones convertidas (confirmadas pero aún no despachadas), agregadas
// por modelo en la consulta.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// ListOutstanding devuelve las cantidades reservadas pendientes por modelo.
func (r *ReservationRepo) ListOutstanding(ctx context.Context) ([]entity.Reservation, error) {
	const query = `
		SELECT ei.model, SUM(ei.quantity)::INT AS quantity
		FROM estimate_items ei
		JOIN estimates e ON e.id = ei.estimate_id
		WHERE e.status = 'converted'
		GROUP BY ei.model
		HAVING SUM(ei.quantity) > 0
		ORDER BY ei.model`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar reservas: %w", err)
	}
	defer rows.Close()

	var reservations []entity.Reservation
	for rows.Next() {
		var (
			model    string
			quantity int
		)
		if err := rows.Scan(&model, &quantity); err != nil {
			return nil, fmt.Errorf("scan reserva: %w", err)
		}
		res, err := entity.NewReservation(model, quantity)
		if err != nil {
			return nil, fmt.Errorf("fila de reserva %q: %w", model, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar reservas: %w", err)
	}
	return reservations, nil
}
