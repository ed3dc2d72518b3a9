package dto

import "github.com/shopspring/decimal"

// StockSummaryDTO respuesta de GET /api/operations/summary.
// Vista conciliada punto-en-tiempo entre stock físico y reservas pendientes.
type StockSummaryDTO struct {
	TotalValue      decimal.Decimal   `json:"total_value"`       // valor del stock disponible
	TotalValueLabel string            `json:"total_value_label"` // ej: "$152,300.00"
	TotalUnits      int               `json:"total_units"`       // piezas disponibles (antes de reservas)
	NetAvailable    int               `json:"net_available"`     // disponible para prometer
	ReservedUnits   int               `json:"reserved_units"`
	SoldUnits       int               `json:"sold_units"`
	ModelCount      int               `json:"model_count"`
	ByModel         []ModelSummaryDTO `json:"by_model"`
	GeneratedAt     string            `json:"generated_at"` // RFC 3339
}

// ModelSummaryDTO desglose por modelo, ordenado por qty descendente.
// Shortfall solo aparece cuando hay sobre-reserva (reservas > stock físico).
type ModelSummaryDTO struct {
	Model      string          `json:"model"`
	Qty        int             `json:"qty"`
	Reserved   int             `json:"reserved"`
	Available  int             `json:"available"`
	Shortfall  int             `json:"shortfall,omitempty"`
	TotalPrice decimal.Decimal `json:"total_price"`
	AvgPrice   decimal.Decimal `json:"avg_price"`
}

// FiscalWeekDTO una semana fiscal para etiquetar transacciones con su período.
type FiscalWeekDTO struct {
	Week       int    `json:"week"`
	Month      string `json:"month"`      // YYYY-MM del mes dueño
	StartDate  string `json:"start_date"` // YYYY-MM-DD, siempre lunes
	EndDate    string `json:"end_date"`   // YYYY-MM-DD, siempre viernes
	Label      string `json:"label"`       // "Semana N"
	MonthLabel string `json:"month_label"` // "Semana N - Abril"
}
