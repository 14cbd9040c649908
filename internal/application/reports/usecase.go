// Package reports contiene los casos de uso de lectura: KPIs del dashboard y
// el reporte por cliente (totales de cerveza, consigna y global).
package reports

import (
	"context"
	"sort"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
	"github.com/tu-usuario/keg-tracer/internal/application/movements"
	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

// ReportUseCase genera el dashboard y el reporte a partir del ledger de movimientos.
// Fuente de datos: ReportRepository (consultas read-only); no toca las tablas directamente.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// GetDashboard construye los KPIs: fûts entregados/recogidos/devueltos, fûts
// aún fuera, y totales de cerveza, consigna y global.
func (uc *ReportUseCase) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	totals, err := uc.reportRepo.GetMovementTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{
		DeliveredQty:   totals.DeliveredQty,
		FullReturnQty:  totals.FullReturnQty,
		EmptyReturnQty: totals.EmptyReturnQty,
		KegsOut:        totals.DeliveredQty - totals.FullReturnQty - totals.EmptyReturnQty,
		BeerTTCTotal:   totals.BeerTTCTotal,
		ConsigneTotal:  totals.ConsigneTotal,
		GrandTotal:     totals.BeerTTCTotal.Add(totals.ConsigneTotal),
	}, nil
}

// GetReport construye el reporte completo: movimientos en orden cronológico,
// agrupación por cliente y totales globales.
func (uc *ReportUseCase) GetReport(ctx context.Context) (*dto.ReportDTO, error) {
	moves, err := uc.reportRepo.ListMovementsChrono(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.ReportDTO{
		Movements: make([]dto.MovementResponse, 0, len(moves)),
	}
	byClient := make(map[string]*dto.ClientReportLine)

	for _, m := range moves {
		report.Movements = append(report.Movements, movements.ToMovementResponse(m))

		beer := m.TotalBeerTTC()
		consigne := m.TotalConsigne()
		report.BeerTTCTotal = report.BeerTTCTotal.Add(beer)
		report.ConsigneTotal = report.ConsigneTotal.Add(consigne)

		line, ok := byClient[m.ClientName]
		if !ok {
			line = &dto.ClientReportLine{ClientName: m.ClientName}
			byClient[m.ClientName] = line
		}
		line.BeerTTC = line.BeerTTC.Add(beer)
		line.Consigne = line.Consigne.Add(consigne)
		line.Total = line.Total.Add(m.TotalTTCWithConsigne())
	}
	report.GrandTotal = report.BeerTTCTotal.Add(report.ConsigneTotal)

	report.ByClient = make([]dto.ClientReportLine, 0, len(byClient))
	for _, line := range byClient {
		report.ByClient = append(report.ByClient, *line)
	}
	sort.Slice(report.ByClient, func(i, j int) bool {
		return report.ByClient[i].ClientName < report.ByClient[j].ClientName
	})

	return report, nil
}
