package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/windwireless/operations-api/internal/application/dto"
	"github.com/windwireless/operations-api/internal/application/operations"
)

// FiscalHandler maneja los endpoints del calendario fiscal.
type FiscalHandler struct {
	uc *operations.CalendarUseCase
}

// NewFiscalHandler construye el handler.
func NewFiscalHandler(uc *operations.CalendarUseCase) *FiscalHandler {
	return &FiscalHandler{uc: uc}
}

// ListWeeks devuelve las semanas fiscales del mes pedido.
// GET /api/fiscal/weeks?year=2026&month=4
func (h *FiscalHandler) ListWeeks(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_ARGUMENT", Message: "parámetro year requerido",
		})
	}

	weeks, err := h.uc.WeeksForMonth(year, month)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(weeks)
}

// GetCurrentWeek devuelve la semana fiscal en curso.
// GET /api/fiscal/weeks/current
func (h *FiscalHandler) GetCurrentWeek(c *fiber.Ctx) error {
	week, err := h.uc.CurrentWeek()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(week)
}

// GetWeekForDate devuelve la semana fiscal que contiene la fecha dada.
// GET /api/fiscal/weeks/for-date?date=2026-04-01
func (h *FiscalHandler) GetWeekForDate(c *fiber.Ctx) error {
	week, err := h.uc.WeekForDate(c.Query("date"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(week)
}
