package dto

import "github.com/shopspring/decimal"

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name string `json:"name"`
}

// ClientResponse un cliente en los listados.
type ClientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateBeerRequest body para POST /api/beers. El precio acepta coma decimal francesa ("102,00").
type CreateBeerRequest struct {
	Name     string `json:"name"`
	PriceTTC string `json:"price_ttc"`
}

// BeerResponse una cerveza del catálogo.
type BeerResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	PriceTTC decimal.Decimal `json:"price_ttc"`
}
