package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/windwireless/operations-api/internal/application/operations"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SummaryUC  *operations.SummaryUseCase
	CalendarUC *operations.CalendarUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard operativo
	ops := api.Group("/operations")
	opsHandler := NewOperationsHandler(deps.SummaryUC)
	ops.Get("/summary", opsHandler.GetSummary)
	ops.Get("/summary/pdf", opsHandler.GetSummaryPDF)

	// Calendario fiscal
	fiscalGroup := api.Group("/fiscal")
	fiscalHandler := NewFiscalHandler(deps.CalendarUC)
	fiscalGroup.Get("/weeks", fiscalHandler.ListWeeks)
	fiscalGroup.Get("/weeks/current", fiscalHandler.GetCurrentWeek)
	fiscalGroup.Get("/weeks/for-date", fiscalHandler.GetWeekForDate)
}
