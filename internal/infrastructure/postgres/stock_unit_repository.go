package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/windwireless/operations-api/internal/domain/entity"
	"github.com/windwireless/operations-api/internal/domain/repository"
)

var _ repository.StockUnitRepository = (*StockUnitRepo)(nil)

// StockUnitRepo adaptador read-only del feed de stock físico. Filtra el
// soft-delete en la consulta: el núcleo nunca ve piezas eliminadas.
type StockUnitRepo struct {
	q Querier
}

// NewStockUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockUnitRepository(q Querier) *StockUnitRepo {
	return &StockUnitRepo{q: q}
}

// ListActive devuelve el snapshot completo de piezas no eliminadas.
// Las filas pasan por entity.NewStockUnit: una fila malformada aborta la
// lectura en vez de colarse al agregador.
func (r *StockUnitRepo) ListActive(ctx context.Context) ([]entity.StockUnit, error) {
	const query = `
		SELECT id::TEXT, model, price, status, created_at
		FROM inventory
		WHERE deleted_at IS NULL
		  AND status IN ('Available', 'Sold')
		ORDER BY created_at`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar stock: %w", err)
	}
	defer rows.Close()

	var units []entity.StockUnit
	for rows.Next() {
		var (
			id, model, status string
			price             decimal.Decimal
			createdAt         time.Time
		)
		if err := rows.Scan(&id, &model, &price, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		unit, err := entity.NewStockUnit(id, model, price, entity.UnitStatus(status), createdAt)
		if err != nil {
			return nil, fmt.Errorf("fila de stock %s: %w", id, err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar stock: %w", err)
	}
	return units, nil
}
