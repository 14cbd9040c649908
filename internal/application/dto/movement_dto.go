package dto

import "github.com/shopspring/decimal"

// RegisterMovementRequest body para POST /api/movement (ingesta JSON del cliente offline).
// dt en formato YYYY-MM-DD; ausente = hoy. qty ausente o cero = 1.
// consigne_per_keg ausente o cero = valor configurado del servidor.
type RegisterMovementRequest struct {
	Dt             string          `json:"dt"`
	MType          string          `json:"mtype"`
	ClientID       int64           `json:"client_id"`
	BeerID         int64           `json:"beer_id"`
	Qty            int             `json:"qty"`
	ConsignePerKeg decimal.Decimal `json:"consigne_per_keg"`
	Notes          string          `json:"notes"`
	LocalID        string          `json:"local_id,omitempty"` // marcador de trazabilidad del cliente PWA
}

// MovementAcceptedResponse respuesta de aceptación de un movimiento.
// El flag ok es el contrato con el cliente offline: solo ok:true cuenta como entregado.
type MovementAcceptedResponse struct {
	OK      bool   `json:"ok"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MovementResponse un movimiento en los listados y el reporte.
type MovementResponse struct {
	ID                   int64           `json:"id"`
	Dt                   string          `json:"dt"`
	MType                string          `json:"mtype"`
	Qty                  int             `json:"qty"`
	ClientID             int64           `json:"client_id"`
	ClientName           string          `json:"client_name"`
	BeerID               int64           `json:"beer_id"`
	BeerName             string          `json:"beer_name"`
	PriceTTCPerKeg       decimal.Decimal `json:"price_ttc_per_keg"`
	ConsignePerKeg       decimal.Decimal `json:"consigne_per_keg"`
	Notes                string          `json:"notes"`
	TotalBeerTTC         decimal.Decimal `json:"total_beer_ttc"`
	TotalConsigne        decimal.Decimal `json:"total_consigne"`
	TotalTTCWithConsigne decimal.Decimal `json:"total_ttc_with_consigne"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Page      PageResponse       `json:"page"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
