package operations

import (
	"fmt"
	"time"

	"github.com/windwireless/operations-api/internal/application/dto"
	"github.com/windwireless/operations-api/internal/domain"
	"github.com/windwireless/operations-api/internal/domain/fiscal"
)

// CalendarUseCase expone el calendario fiscal (semanas que cierran en viernes)
// a la capa de presentación: listado por mes, resolución por fecha y semana
// en curso.
type CalendarUseCase struct {
	now func() time.Time
}

// NewCalendarUseCase construye el caso de uso.
func NewCalendarUseCase() *CalendarUseCase {
	return &CalendarUseCase{now: time.Now}
}

// WeeksForMonth devuelve las semanas fiscales del mes dado (4 o 5).
func (uc *CalendarUseCase) WeeksForMonth(year, month int) ([]dto.FiscalWeekDTO, error) {
	weeks, err := fiscal.WeeksForMonth(year, time.Month(month))
	if err != nil {
		return nil, err
	}
	out := make([]dto.FiscalWeekDTO, len(weeks))
	for i, w := range weeks {
		out[i] = toWeekDTO(w)
	}
	return out, nil
}

// WeekForDate resuelve la semana fiscal que contiene la fecha "YYYY-MM-DD".
func (uc *CalendarUseCase) WeekForDate(dateStr string) (*dto.FiscalWeekDTO, error) {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, dateStr)
	}
	w, err := fiscal.WeekContaining(d)
	if err != nil {
		return nil, err
	}
	out := toWeekDTO(w)
	return &out, nil
}

// CurrentWeek devuelve la semana fiscal en curso.
func (uc *CalendarUseCase) CurrentWeek() (*dto.FiscalWeekDTO, error) {
	w, err := fiscal.WeekContaining(uc.now())
	if err != nil {
		return nil, err
	}
	out := toWeekDTO(w)
	return &out, nil
}

func toWeekDTO(w fiscal.Week) dto.FiscalWeekDTO {
	return dto.FiscalWeekDTO{
		Week:       w.Week,
		Month:      fmt.Sprintf("%04d-%02d", w.Year, int(w.Month)),
		StartDate:  w.Start.Format("2006-01-02"),
		EndDate:    w.End.Format("2006-01-02"),
		Label:      w.Label(),
		MonthLabel: w.MonthLabel(),
	}
}
