package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windwireless/operations-api/internal/domain"
	"github.com/windwireless/operations-api/internal/domain/entity"
)

func TestNewStockUnit_Valida(t *testing.T) {
	now := time.Now()
	u, err := entity.NewStockUnit("u-1", "iPhone 13", decimal.NewFromInt(400), entity.StatusAvailable, now)
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "iPhone 13", u.Model)
}

func TestNewStockUnit_GeneraUUIDSiFaltaID(t *testing.T) {
	u, err := entity.NewStockUnit("", "iPhone 13", decimal.NewFromInt(400), entity.StatusAvailable, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
}

func TestNewStockUnit_Rechazos(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		model  string
		price  decimal.Decimal
		status entity.UnitStatus
	}{
		{"modelo vacío", "", decimal.NewFromInt(100), entity.StatusAvailable},
		{"precio negativo", "X", decimal.NewFromInt(-1), entity.StatusAvailable},
		{"estado desconocido", "X", decimal.NewFromInt(100), entity.UnitStatus("Reserved")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.NewStockUnit("u-1", tc.model, tc.price, tc.status, now)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestNewReservation(t *testing.T) {
	r, err := entity.NewReservation("iPhone 13", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Quantity)

	_, err = entity.NewReservation("iPhone 13", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero se rechaza")
	_, err = entity.NewReservation("iPhone 13", -2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = entity.NewReservation("", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
