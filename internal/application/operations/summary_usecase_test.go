package operations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windwireless/operations-api/internal/application/dto"
	"github.com/windwireless/operations-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs
// ──────────────────────────────────────────────────────────────────────────────

type stubSnapshots struct {
	units        []entity.StockUnit
	reservations []entity.Reservation
	err          error
}

func (s *stubSnapshots) Snapshot(context.Context) ([]entity.StockUnit, []entity.Reservation, error) {
	return s.units, s.reservations, s.err
}

type stubReport struct {
	got *dto.StockSummaryDTO
	out []byte
	err error
}

func (s *stubReport) GenerateSummaryPDF(_ context.Context, summary *dto.StockSummaryDTO) ([]byte, error) {
	s.got = summary
	return s.out, s.err
}

func snapshotFixture() *stubSnapshots {
	mk := func(model string, price int64, status entity.UnitStatus) entity.StockUnit {
		return entity.StockUnit{Model: model, Price: decimal.NewFromInt(price), Status: status}
	}
	return &stubSnapshots{
		units: []entity.StockUnit{
			mk("iPhone 13", 400, entity.StatusAvailable),
			mk("iPhone 13", 420, entity.StatusAvailable),
			mk("Galaxy S24", 600, entity.StatusAvailable),
			mk("iPhone 12", 280, entity.StatusSold),
		},
		reservations: []entity.Reservation{{Model: "iPhone 13", Quantity: 1}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_ArmaElDTO(t *testing.T) {
	uc := NewSummaryUseCase(snapshotFixture(), nil)
	uc.now = func() time.Time { return time.Date(2026, time.April, 8, 15, 0, 0, 0, time.UTC) }

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalUnits)
	assert.Equal(t, 2, got.NetAvailable)
	assert.Equal(t, 1, got.ReservedUnits)
	assert.Equal(t, 1, got.SoldUnits)
	assert.Equal(t, 2, got.ModelCount)
	assert.True(t, got.TotalValue.Equal(decimal.NewFromInt(1420)))
	assert.Equal(t, "$1,420.00", got.TotalValueLabel)
	assert.Equal(t, "2026-04-08T15:00:00Z", got.GeneratedAt)

	require.Len(t, got.ByModel, 2)
	assert.Equal(t, "iPhone 13", got.ByModel[0].Model)
	assert.Equal(t, 2, got.ByModel[0].Qty)
	assert.Equal(t, 1, got.ByModel[0].Available)
	assert.True(t, got.ByModel[0].AvgPrice.Equal(decimal.NewFromInt(410)))
}

func TestGetSummary_PropagaErrorDelSnapshot(t *testing.T) {
	boom := errors.New("db caída")
	uc := NewSummaryUseCase(&stubSnapshots{err: boom}, nil)

	_, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, boom)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummaryPDF
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummaryPDF_DelegaEnElGenerador(t *testing.T) {
	report := &stubReport{out: []byte("%PDF-1.7 fake")}
	uc := NewSummaryUseCase(snapshotFixture(), report)

	got, err := uc.GetSummaryPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, report.out, got)
	require.NotNil(t, report.got, "el generador recibe el resumen ya armado")
	assert.Equal(t, 3, report.got.TotalUnits)
}

func TestGetSummaryPDF_SinGeneradorConfigurado(t *testing.T) {
	uc := NewSummaryUseCase(snapshotFixture(), nil)
	_, err := uc.GetSummaryPDF(context.Background())
	assert.Error(t, err)
}
