package operations

import (
	"context"

	"github.com/windwireless/operations-api/internal/application/dto"
	"github.com/windwireless/operations-api/internal/domain/entity"
)

// SnapshotRunner obtiene los dos feeds de la conciliación. La implementación
// de infraestructura los lee dentro de una misma transacción read-only para
// que el par sea un punto-en-tiempo consistente; el caso de uso no asume nada
// más que "ambos slices vienen del mismo instante lógico".
type SnapshotRunner interface {
	Snapshot(ctx context.Context) (units []entity.StockUnit, reservations []entity.Reservation, err error)
}

// ReportGenerator genera la representación PDF del resumen de inventario.
type ReportGenerator interface {
	GenerateSummaryPDF(ctx context.Context, summary *dto.StockSummaryDTO) ([]byte, error)
}
