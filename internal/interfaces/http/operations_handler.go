package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/windwireless/operations-api/internal/application/dto"
	"github.com/windwireless/operations-api/internal/application/operations"
	"github.com/windwireless/operations-api/internal/domain"
)

// OperationsHandler maneja los endpoints del dashboard operativo.
type OperationsHandler struct {
	uc *operations.SummaryUseCase
}

// NewOperationsHandler construye el handler.
func NewOperationsHandler(uc *operations.SummaryUseCase) *OperationsHandler {
	return &OperationsHandler{uc: uc}
}

// GetSummary devuelve la conciliación de inventario actual.
// GET /api/operations/summary
//
// Respuesta: StockSummaryDTO (total_value, total_units, net_available,
// reserved_units, sold_units, model_count, by_model[], generated_at).
// No recibe parámetros; el snapshot se toma al momento de la petición.
func (h *OperationsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(summary)
}

// GetSummaryPDF devuelve el resumen como reporte PDF.
// GET /api/operations/summary/pdf
func (h *OperationsHandler) GetSummaryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GetSummaryPDF(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="resumen-inventario.pdf"`)
	return c.Send(pdfBytes)
}

// errorJSON mapea errores de dominio a códigos HTTP.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_ARGUMENT", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
