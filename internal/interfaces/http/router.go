package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/keg-tracer/internal/application/movements"
	"github.com/tu-usuario/keg-tracer/internal/application/reports"
	"github.com/tu-usuario/keg-tracer/internal/application/usecase"
	"github.com/tu-usuario/keg-tracer/internal/infrastructure/excel"
	"github.com/tu-usuario/keg-tracer/internal/infrastructure/metrics"
	"github.com/tu-usuario/keg-tracer/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterMovement *movements.RegisterMovementUseCase
	ClientUC         *usecase.ClientUseCase
	BeerUC           *usecase.BeerUseCase
	ReportUC         *reports.ReportUseCase
	ExcelExporter    *excel.ReportExporter
	PDFGenerator     *pdf.MarotoReportGenerator
	MetricsEnabled   bool
}

// Router registra las rutas de la API y las rutas de formulario.
func Router(app *fiber.App, deps RouterDeps) {
	// Sonda de conectividad del cliente offline. Sin caché para que cada
	// sonda toque realmente el servidor.
	app.Get("/api/ping", func(c *fiber.Ctx) error {
		metrics.PingRequests.Inc()
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.JSON(fiber.Map{"ok": true})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "keg-tracer"})
	})

	if deps.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api")

	// Movimientos
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	api.Post("/movement", movementHandler.RegisterJSON)
	api.Get("/movements", movementHandler.List)
	api.Delete("/movements/:id", movementHandler.Delete)

	// Rutas de formulario del flujo server-rendered original; la PWA
	// intercepta /movements/add antes de llegar aquí.
	app.Post("/movements/add", movementHandler.RegisterForm)
	app.Get("/movements", movementHandler.List)

	// Catálogos
	catalogHandler := NewCatalogHandler(deps.ClientUC, deps.BeerUC)
	api.Get("/clients", catalogHandler.ListClients)
	api.Post("/clients", catalogHandler.CreateClient)
	api.Get("/beers", catalogHandler.ListBeers)
	api.Post("/beers", catalogHandler.CreateBeer)

	// Reportes y exportaciones
	reportHandler := NewReportHandler(deps.ReportUC, deps.ExcelExporter, deps.PDFGenerator)
	api.Get("/dashboard", reportHandler.Dashboard)
	api.Get("/report", reportHandler.Report)
	api.Get("/report/export.xlsx", reportHandler.ExportExcel)
	api.Get("/report/export.pdf", reportHandler.ExportPDF)
	// Alias cortos que usa la UI original para los links de descarga.
	app.Get("/export.xlsx", reportHandler.ExportExcel)
	app.Get("/export.pdf", reportHandler.ExportPDF)
}
