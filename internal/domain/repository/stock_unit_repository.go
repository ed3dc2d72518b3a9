package repository

import (
	"context"

	"github.com/windwireless/operations-api/internal/domain/entity"
)

// StockUnitRepository define el puerto de lectura del feed de stock físico.
// Las implementaciones devuelven solo piezas no eliminadas (soft-delete
// filtrado en la consulta) y son read-only.
type StockUnitRepository interface {
	// ListActive devuelve el snapshot completo de piezas no eliminadas.
	ListActive(ctx context.Context) ([]entity.StockUnit, error)
}
