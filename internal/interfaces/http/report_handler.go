package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
	"github.com/tu-usuario/keg-tracer/internal/application/reports"
	"github.com/tu-usuario/keg-tracer/internal/infrastructure/excel"
	"github.com/tu-usuario/keg-tracer/internal/infrastructure/pdf"
)

// ReportHandler expone el dashboard, el reporte JSON y las exportaciones.
type ReportHandler struct {
	uc       *reports.ReportUseCase
	exporter *excel.ReportExporter
	pdfGen   *pdf.MarotoReportGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase, exporter *excel.ReportExporter, pdfGen *pdf.MarotoReportGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, exporter: exporter, pdfGen: pdfGen}
}

// Dashboard godoc
// @Summary      KPIs del negocio (fûts fuera, totales)
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(d)
}

// Report godoc
// @Summary      Reporte completo: ledger cronológico + totales por cliente
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/report [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	r, err := h.uc.GetReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(r)
}

// ExportExcel godoc
// @Summary      Descargar el reporte como libro .xlsx
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /export.xlsx [get]
func (h *ReportHandler) ExportExcel(c *fiber.Ctx) error {
	r, err := h.uc.GetReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.exporter.Build(r)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT", Message: err.Error()})
	}
	filename := fmt.Sprintf("rapport_futs_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Descargar el reporte como PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /export.pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	r, err := h.uc.GetReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.pdfGen.GenerateReportPDF(r)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT", Message: err.Error()})
	}
	filename := fmt.Sprintf("rapport_futs_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
