package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/windwireless/operations-api/internal/application/operations"
	"github.com/windwireless/operations-api/internal/domain/entity"
)

var _ operations.SnapshotRunner = (*SnapshotRunner)(nil)

// SnapshotRunner lee los dos feeds de la conciliación dentro de una misma
// transacción read-only REPEATABLE READ: el par (stock, reservas) corresponde
// a un único instante de la base, no a dos lecturas desfasadas.
type SnapshotRunner struct {
	pool *pgxpool.Pool
}

// NewSnapshotRunner construye el runner con el pool.
func NewSnapshotRunner(pool *pgxpool.Pool) *SnapshotRunner {
	return &SnapshotRunner{pool: pool}
}

// Snapshot devuelve el snapshot consistente de piezas y reservas.
func (r *SnapshotRunner) Snapshot(ctx context.Context) ([]entity.StockUnit, []entity.Reservation, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	units, err := NewStockUnitRepository(tx).ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	reservations, err := NewReservationRepository(tx).ListOutstanding(ctx)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return units, reservations, nil
}
