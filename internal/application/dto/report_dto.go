package dto

import "github.com/shopspring/decimal"

// DashboardDTO KPIs del tablero principal.
type DashboardDTO struct {
	DeliveredQty   int64           `json:"delivered_qty"`
	FullReturnQty  int64           `json:"full_return_qty"`
	EmptyReturnQty int64           `json:"empty_return_qty"`
	KegsOut        int64           `json:"kegs_out"` // fûts aún en manos de clientes
	BeerTTCTotal   decimal.Decimal `json:"beer_ttc_total"`
	ConsigneTotal  decimal.Decimal `json:"consigne_total"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}

// ClientReportLine totales por cliente en el reporte.
type ClientReportLine struct {
	ClientName    string          `json:"client_name"`
	BeerTTC       decimal.Decimal `json:"beer_ttc"`
	Consigne      decimal.Decimal `json:"consigne"`
	Total         decimal.Decimal `json:"total"`
}

// ReportDTO reporte completo: movimientos cronológicos, totales por cliente y globales.
type ReportDTO struct {
	Movements     []MovementResponse `json:"movements"`
	ByClient      []ClientReportLine `json:"by_client"`
	BeerTTCTotal  decimal.Decimal    `json:"beer_ttc_total"`
	ConsigneTotal decimal.Decimal    `json:"consigne_total"`
	GrandTotal    decimal.Decimal    `json:"grand_total"`
}
