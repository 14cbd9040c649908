package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de fûts.
const (
	MovementTypeDelivery    = "delivery"     // entrega de fûts llenos (débito de consigna)
	MovementTypeFullReturn  = "full-return"  // recogida de fût lleno sin abrir (abono de cerveza y consigna)
	MovementTypeEmptyReturn = "empty-return" // devolución de fût vacío (abono de consigna)
)

// IsValidMovementType indica si el tipo pertenece al enum de movimientos.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeDelivery, MovementTypeFullReturn, MovementTypeEmptyReturn:
		return true
	}
	return false
}

// Movement un movimiento de fûts: entrega, recogida de lleno o devolución de vacío.
// PriceTTCPerKeg y ConsignePerKeg se congelan al registrar el movimiento; cambios
// posteriores del catálogo no alteran el histórico.
type Movement struct {
	ID             int64
	Dt             time.Time // fecha del movimiento (solo fecha)
	MType          string
	Qty            int
	ClientID       int64
	BeerID         int64
	PriceTTCPerKeg decimal.Decimal
	ConsignePerKeg decimal.Decimal
	Notes          string
	TransactionID  string // uuid de trazabilidad del registro
	CreatedAt      time.Time

	// Denormalizados en los listados (JOIN con clients/beers); vacíos fuera de ellos.
	ClientName string
	BeerName   string
}

// TotalBeerTTC importe de cerveza del movimiento con signo:
// entrega = +precio×qty, recogida de lleno = −precio×qty (abono), vacío = 0.
func (m *Movement) TotalBeerTTC() decimal.Decimal {
	qty := decimal.NewFromInt(int64(m.Qty))
	switch m.MType {
	case MovementTypeDelivery:
		return m.PriceTTCPerKeg.Mul(qty)
	case MovementTypeFullReturn:
		return m.PriceTTCPerKeg.Mul(qty).Neg()
	default:
		return decimal.Zero
	}
}

// TotalConsigne consigna del movimiento con signo:
// entrega = +consigna×qty; ambas devoluciones = −consigna×qty (crédito).
func (m *Movement) TotalConsigne() decimal.Decimal {
	total := m.ConsignePerKeg.Mul(decimal.NewFromInt(int64(m.Qty)))
	if m.MType == MovementTypeDelivery {
		return total
	}
	return total.Neg()
}

// TotalTTCWithConsigne importe total del movimiento (cerveza + consigna, con signos).
func (m *Movement) TotalTTCWithConsigne() decimal.Decimal {
	return m.TotalBeerTTC().Add(m.TotalConsigne())
}
