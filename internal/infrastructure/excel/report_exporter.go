// Package excel genera el reporte del negocio como libro .xlsx descargable.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
)

const (
	sheetMovements = "Mouvements"
	sheetByClient  = "Par client"
)

// ReportExporter construye el .xlsx del reporte (movimientos + totales por cliente).
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

// Build genera el libro y devuelve sus bytes.
func (e *ReportExporter) Build(report *dto.ReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Hoja 1: ledger cronológico
	f.SetSheetName(f.GetSheetName(0), sheetMovements)
	headers := []any{"Date", "Type", "Client", "Bière", "Qté", "Prix TTC/fût", "Consigne/fût", "Bière TTC", "Consigne", "Total", "Notes"}
	if err := f.SetSheetRow(sheetMovements, "A1", &headers); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}
	for i, m := range report.Movements {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{
			m.Dt, m.MType, m.ClientName, m.BeerName, m.Qty,
			m.PriceTTCPerKeg.InexactFloat64(), m.ConsignePerKeg.InexactFloat64(),
			m.TotalBeerTTC.InexactFloat64(), m.TotalConsigne.InexactFloat64(),
			m.TotalTTCWithConsigne.InexactFloat64(), m.Notes,
		}
		if err := f.SetSheetRow(sheetMovements, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	// Hoja 2: totales por cliente + globales
	if _, err := f.NewSheet(sheetByClient); err != nil {
		return nil, fmt.Errorf("excel: hoja por cliente: %w", err)
	}
	clientHeaders := []any{"Client", "Bière TTC", "Consigne", "Total"}
	if err := f.SetSheetRow(sheetByClient, "A1", &clientHeaders); err != nil {
		return nil, fmt.Errorf("excel: cabecera por cliente: %w", err)
	}
	rowN := 2
	for _, line := range report.ByClient {
		cell := fmt.Sprintf("A%d", rowN)
		row := []any{
			line.ClientName,
			line.BeerTTC.InexactFloat64(),
			line.Consigne.InexactFloat64(),
			line.Total.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetByClient, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: cliente %q: %w", line.ClientName, err)
		}
		rowN++
	}
	totalsRow := []any{
		"TOTAL",
		report.BeerTTCTotal.InexactFloat64(),
		report.ConsigneTotal.InexactFloat64(),
		report.GrandTotal.InexactFloat64(),
	}
	if err := f.SetSheetRow(sheetByClient, fmt.Sprintf("A%d", rowN+1), &totalsRow); err != nil {
		return nil, fmt.Errorf("excel: totales: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
