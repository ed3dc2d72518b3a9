// Package pdf implementa el reporte imprimible del Resumen de Inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Resumen de Inventario  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Valor total │ Piezas │ Disp. neto │ Reserv. │ Vend.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Modelo | Cant | Res | Disp | Valor | Promedio       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/windwireless/operations-api/internal/application/dto"
	"github.com/windwireless/operations-api/internal/application/operations"
	"github.com/windwireless/operations-api/pkg/money"
)

var _ operations.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 70, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa operations.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSummaryPDF genera el reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSummaryPDF(
	_ context.Context,
	summary *dto.StockSummaryDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableModelRows(summary.ByModel) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(summary *dto.StockSummaryDTO) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("RESUMEN DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Stock físico vs. reservas pendientes (disponible para prometer)", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+summary.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// kpiRow: los cinco indicadores del dashboard en una franja.
func kpiRow(summary *dto.StockSummaryDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		col.New(1),
		kpi("VALOR TOTAL", summary.TotalValueLabel),
		kpi("PIEZAS", fmt.Sprintf("%d", summary.TotalUnits)),
		kpi("DISPONIBLE", fmt.Sprintf("%d", summary.NetAvailable)),
		kpi("RESERVADO", fmt.Sprintf("%d", summary.ReservedUnits)),
		kpi("VENDIDO", fmt.Sprintf("%d", summary.SoldUnits)),
		col.New(1),
	)
}

// tableHeaderRow: cabecera de la tabla por modelo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Modelo", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Res.", 1, align.Center),
		h("Disp.", 1, align.Center),
		h("Valor", 3, align.Right),
		h("Promedio", 2, align.Right),
	)
}

// tableModelRows: una fila por modelo; la sobre-reserva se marca en color.
func tableModelRows(models []dto.ModelSummaryDTO) []core.Row {
	result := make([]core.Row, 0, len(models))
	for _, m := range models {
		dispColor := colorGray
		disp := fmt.Sprintf("%d", m.Available)
		if m.Shortfall > 0 {
			dispColor = colorAlert
			disp = fmt.Sprintf("%d (-%d)", m.Available, m.Shortfall)
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				m.Model,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", m.Qty),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", m.Reserved),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				disp,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: dispColor},
			)),
			col.New(3).Add(text.New(
				money.Format(m.TotalPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(m.AvgPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}
