package operations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windwireless/operations-api/internal/domain"
)

func TestWeeksForMonth_DTO(t *testing.T) {
	uc := NewCalendarUseCase()

	weeks, err := uc.WeeksForMonth(2026, 4)
	require.NoError(t, err)
	require.Len(t, weeks, 4)

	assert.Equal(t, 1, weeks[0].Week)
	assert.Equal(t, "2026-04", weeks[0].Month)
	assert.Equal(t, "2026-03-30", weeks[0].StartDate)
	assert.Equal(t, "2026-04-03", weeks[0].EndDate)
	assert.Equal(t, "Semana 1", weeks[0].Label)
	assert.Equal(t, "Semana 1 - Abril", weeks[0].MonthLabel)
}

func TestWeeksForMonth_MesInvalido(t *testing.T) {
	uc := NewCalendarUseCase()
	_, err := uc.WeeksForMonth(2026, 13)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWeekForDate(t *testing.T) {
	uc := NewCalendarUseCase()

	w, err := uc.WeekForDate("2026-03-30")
	require.NoError(t, err)
	assert.Equal(t, 1, w.Week)
	assert.Equal(t, "2026-04", w.Month, "el lunes 30 de marzo pertenece a la Semana 1 de abril")

	_, err = uc.WeekForDate("30/03/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato distinto de YYYY-MM-DD se rechaza")
	_, err = uc.WeekForDate("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCurrentWeek_UsaElReloj(t *testing.T) {
	uc := NewCalendarUseCase()
	uc.now = func() time.Time { return time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC) }

	w, err := uc.CurrentWeek()
	require.NoError(t, err)
	assert.Equal(t, "2026-01", w.Month)
	assert.Equal(t, 3, w.Week, "el jueves 15 de enero cae en la Semana 3 (12–16)")
}
