// Package inventory implementa la conciliación entre el stock físico y la
// demanda comprometida (reservas), produciendo la vista "disponible para
// prometer" por modelo y a nivel agregado. Servicio de dominio puro: sin I/O,
// sin estado compartido, idempotente sobre las mismas entradas.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/windwireless/operations-api/internal/domain/entity"
)

// ModelSummary desglose de un modelo con piezas disponibles.
type ModelSummary struct {
	Model      string
	Qty        int // piezas físicas disponibles
	Reserved   int // demanda comprometida contra el modelo
	Available  int // max(0, Qty - Reserved)
	Shortfall  int // max(0, Reserved - Qty): déficit crudo de sobre-reserva
	TotalPrice decimal.Decimal
	AvgPrice   decimal.Decimal // TotalPrice / Qty, redondeado a 2 decimales
}

// Summary resultado de la conciliación de los dos snapshots.
//
// ReservedUnits suma todas las reservas recibidas, incluidas las de modelos
// sin stock disponible: esas no tienen fila en ByModel pero sí descuentan en
// NetAvailable.
type Summary struct {
	TotalValue    decimal.Decimal // Σ TotalPrice de los modelos disponibles
	TotalUnits    int             // piezas disponibles físicas (antes de reservas)
	NetAvailable  int             // max(0, TotalUnits - ReservedUnits)
	ReservedUnits int
	SoldUnits     int
	ModelCount    int // modelos distintos con piezas disponibles
	ByModel       []ModelSummary
}

// Reconcile cruza el snapshot de piezas físicas con el de reservas pendientes.
//
// Las reservas llegan agregadas por modelo; si el caller pasa varias filas del
// mismo modelo se suman antes de usarse. Una reserva que excede el stock del
// modelo se recorta a cero disponible (nunca negativo); el déficit crudo queda
// expuesto en Shortfall para reportería.
//
// ByModel se ordena por Qty descendente y, a igual Qty, por Model ascendente,
// para que salidas repetidas sobre la misma entrada sean idénticas byte a byte.
func Reconcile(units []entity.StockUnit, reservations []entity.Reservation) Summary {
	reservedByModel := make(map[string]int, len(reservations))
	reservedUnits := 0
	for _, r := range reservations {
		reservedByModel[r.Model] += r.Quantity
		reservedUnits += r.Quantity
	}

	type group struct {
		qty        int
		totalPrice decimal.Decimal
	}
	groups := make(map[string]*group)
	soldUnits := 0
	totalUnits := 0
	totalValue := decimal.Zero

	for _, u := range units {
		if u.Status == entity.StatusSold {
			soldUnits++
			continue
		}
		g, ok := groups[u.Model]
		if !ok {
			g = &group{totalPrice: decimal.Zero}
			groups[u.Model] = g
		}
		g.qty++
		g.totalPrice = g.totalPrice.Add(u.Price)
		totalUnits++
		totalValue = totalValue.Add(u.Price)
	}

	byModel := make([]ModelSummary, 0, len(groups))
	for model, g := range groups {
		reserved := reservedByModel[model]
		byModel = append(byModel, ModelSummary{
			Model:      model,
			Qty:        g.qty,
			Reserved:   reserved,
			Available:  max(0, g.qty-reserved),
			Shortfall:  max(0, reserved-g.qty),
			TotalPrice: g.totalPrice,
			AvgPrice:   g.totalPrice.Div(decimal.NewFromInt(int64(g.qty))).Round(2),
		})
	}
	sort.Slice(byModel, func(i, j int) bool {
		if byModel[i].Qty != byModel[j].Qty {
			return byModel[i].Qty > byModel[j].Qty
		}
		return byModel[i].Model < byModel[j].Model
	})

	return Summary{
		TotalValue:    totalValue,
		TotalUnits:    totalUnits,
		NetAvailable:  max(0, totalUnits-reservedUnits),
		ReservedUnits: reservedUnits,
		SoldUnits:     soldUnits,
		ModelCount:    len(groups),
		ByModel:       byModel,
	}
}
