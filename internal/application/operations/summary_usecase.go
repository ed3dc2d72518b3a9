// Package operations contiene los casos de uso del dashboard operativo:
// conciliación de inventario contra reservas y consultas del calendario
// fiscal de la empresa.
package operations

import (
	"context"
	"fmt"
	"time"

	"github.com/windwireless/operations-api/internal/application/dto"
	"github.com/windwireless/operations-api/internal/domain/inventory"
	"github.com/windwireless/operations-api/pkg/money"
)

// SummaryUseCase produce la vista "disponible para prometer" del inventario.
//
// El cálculo en sí (inventory.Reconcile) es puro; este caso de uso solo
// orquesta la toma del snapshot y el armado del DTO. La consistencia entre
// los dos feeds es responsabilidad del SnapshotRunner inyectado.
type SummaryUseCase struct {
	snapshots SnapshotRunner
	pdf       ReportGenerator
	now       func() time.Time
}

// NewSummaryUseCase construye el caso de uso. pdf puede ser nil si el
// despliegue no expone el export (GetSummaryPDF devolverá error).
func NewSummaryUseCase(snapshots SnapshotRunner, pdf ReportGenerator) *SummaryUseCase {
	return &SummaryUseCase{snapshots: snapshots, pdf: pdf, now: time.Now}
}

// GetSummary toma el snapshot, concilia y devuelve el resumen.
func (uc *SummaryUseCase) GetSummary(ctx context.Context) (*dto.StockSummaryDTO, error) {
	units, reservations, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen de inventario: snapshot: %w", err)
	}

	s := inventory.Reconcile(units, reservations)

	byModel := make([]dto.ModelSummaryDTO, len(s.ByModel))
	for i, m := range s.ByModel {
		byModel[i] = dto.ModelSummaryDTO{
			Model:      m.Model,
			Qty:        m.Qty,
			Reserved:   m.Reserved,
			Available:  m.Available,
			Shortfall:  m.Shortfall,
			TotalPrice: m.TotalPrice,
			AvgPrice:   m.AvgPrice,
		}
	}

	return &dto.StockSummaryDTO{
		TotalValue:      s.TotalValue,
		TotalValueLabel: money.Format(s.TotalValue),
		TotalUnits:      s.TotalUnits,
		NetAvailable:    s.NetAvailable,
		ReservedUnits:   s.ReservedUnits,
		SoldUnits:       s.SoldUnits,
		ModelCount:      s.ModelCount,
		ByModel:         byModel,
		GeneratedAt:     uc.now().UTC().Format(time.RFC3339),
	}, nil
}

// GetSummaryPDF genera el reporte PDF del resumen actual.
func (uc *SummaryUseCase) GetSummaryPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("resumen de inventario: generador PDF no configurado")
	}
	summary, err := uc.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	pdfBytes, err := uc.pdf.GenerateSummaryPDF(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("resumen de inventario: generar PDF: %w", err)
	}
	return pdfBytes, nil
}
