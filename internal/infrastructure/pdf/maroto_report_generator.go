// Package pdf genera el reporte del negocio en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Keg Tracer — Rapport consignes                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Date | Type | Client | Bière | Qté | Total          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAR CLIENT: Bière TTC / Consigne / Total                   │
//	│  TOTALES: Bière / Consignes / TOTAL                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 63, Blue: 4}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el PDF del reporte usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{}
}

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(report *dto.ReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Keg Tracer — Rapport", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Ledger cronológico
	m.AddRows(tableHeaderRow())
	for _, mov := range report.Movements {
		m.AddRows(movementRow(mov))
	}

	// Totales por cliente
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("Par client"))
	for _, lineDTO := range report.ByClient {
		m.AddRows(clientRow(lineDTO))
	}

	// Totales globales
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Keg Tracer — Rapport livraisons & consignes", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}))
	}
	return row.New(6).Add(
		header("Date", 2),
		header("Type", 2),
		header("Client", 3),
		header("Bière", 3),
		header("Qté", 1),
		header("Total", 1),
	)
}

func movementRow(m dto.MovementResponse) core.Row {
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8}))
	}
	return row.New(5).Add(
		cell(m.Dt, 2),
		cell(m.MType, 2),
		cell(m.ClientName, 3),
		cell(m.BeerName, 3),
		cell(fmt.Sprintf("%d", m.Qty), 1),
		col.New(1).Add(text.New(eur(m.TotalTTCWithConsigne), props.Text{Size: 8, Align: align.Right})),
	)
}

func clientRow(l dto.ClientReportLine) core.Row {
	return row.New(5).Add(
		col.New(5).Add(text.New(l.ClientName, props.Text{Size: 8})),
		col.New(3).Add(text.New("Bière "+eur(l.BeerTTC), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New("Consigne "+eur(l.Consigne), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(eur(l.Total), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)
}

func totalsRow(r *dto.ReportDTO) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1})),
		col.New(3).Add(text.New("Consignes "+eur(r.ConsigneTotal), props.Text{Size: 9, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(eur(r.GrandTotal), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1})),
	)
}

// eur formatea un importe como euros con dos decimales.
func eur(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
