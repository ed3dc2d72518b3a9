// Package fiscal implementa el calendario de negocio de la empresa: semanas
// lunes–viernes que cierran cada viernes y se atribuyen al mes calendario que
// contiene ese viernes. No es la semana ISO.
//
// Ejemplo: abril 2026, primer viernes el 3 → Semana 1 = 30-mar a 03-abr.
// Enero 2026 tuvo 5 viernes, por lo tanto 5 semanas.
package fiscal

import (
	"fmt"
	"time"

	"github.com/windwireless/operations-api/internal/domain"
)

// Week un período fiscal derivado e inmutable.
// Start siempre es lunes (End − 4 días) y puede caer en el mes calendario
// anterior; la semana pertenece al mes que contiene End.
type Week struct {
	Week  int // ordinal 1..5 dentro del mes
	Year  int
	Month time.Month
	Start time.Time // lunes, inclusive
	End   time.Time // viernes de cierre, inclusive
}

// Label etiqueta corta de la semana, ej: "Semana 2".
func (w Week) Label() string {
	return fmt.Sprintf("Semana %d", w.Week)
}

// MonthLabel etiqueta con el mes, ej: "Semana 2 - Abril".
func (w Week) MonthLabel() string {
	return fmt.Sprintf("Semana %d - %s", w.Week, monthNames[w.Month-1])
}

// Contains indica si la fecha (truncada a día) cae dentro de [Start, End].
func (w Week) Contains(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// WeeksForMonth enumera las semanas fiscales que cierran en el mes dado,
// ordenadas por fecha de cierre ascendente. Todo mes real produce 4 o 5
// semanas (una por viernes). Mes fuera de [1..12] → ErrInvalidInput.
func WeeksForMonth(year int, month time.Month) ([]Week, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: mes %d fuera de rango [1..12]", domain.ErrInvalidInput, int(month))
	}

	// Primer viernes cuyo día cae dentro del mes (día 1..7).
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Friday) - int(first.Weekday()) + 7) % 7
	friday := first.AddDate(0, 0, offset)

	var weeks []Week
	for friday.Month() == month {
		weeks = append(weeks, Week{
			Week:  len(weeks) + 1,
			Year:  year,
			Month: month,
			Start: friday.AddDate(0, 0, -4),
			End:   friday,
		})
		friday = friday.AddDate(0, 0, 7)
	}
	return weeks, nil
}

// WeekContaining resuelve la semana fiscal que contiene la fecha dada.
//
// Se calculan las semanas del mes de la fecha; como la Semana 1 puede empezar
// en el mes anterior, los últimos días de un mes pueden pertenecer a la
// Semana 1 del mes siguiente (y viceversa), así que se consulta también el
// mes adyacente cuando la fecha queda fuera de los rangos propios.
//
// Las semanas cubren lunes–viernes: un sábado o domingo se atribuye a la
// semana que abre el lunes siguiente (una venta de fin de semana cuenta para
// el próximo cierre de viernes). ErrNotFound solo puede ocurrir por violación
// de invariante interna, nunca para una fecha calendario real.
func WeekContaining(date time.Time) (Week, error) {
	d := dateOnly(date)
	switch d.Weekday() {
	case time.Saturday:
		d = d.AddDate(0, 0, 2)
	case time.Sunday:
		d = d.AddDate(0, 0, 1)
	}

	weeks, err := WeeksForMonth(d.Year(), d.Month())
	if err != nil {
		return Week{}, err
	}
	for _, w := range weeks {
		if w.Contains(d) {
			return w, nil
		}
	}

	// Fuera de los rangos del mes propio: el mes adyacente es el dueño.
	var adjacent time.Time
	if d.Before(weeks[0].Start) {
		adjacent = time.Date(d.Year(), d.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	} else {
		adjacent = time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	}
	weeks, err = WeeksForMonth(adjacent.Year(), adjacent.Month())
	if err != nil {
		return Week{}, err
	}
	for _, w := range weeks {
		if w.Contains(d) {
			return w, nil
		}
	}
	return Week{}, fmt.Errorf("%w: ninguna semana fiscal contiene %s", domain.ErrNotFound, d.Format("2006-01-02"))
}

// dateOnly trunca a medianoche UTC para comparar solo la fecha.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
