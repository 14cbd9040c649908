package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
)

// MovementTotals agregados globales del ledger para el dashboard.
// Los importes ya llevan el signo del tipo de movimiento (ver entity.Movement).
type MovementTotals struct {
	DeliveredQty   int64 // fûts entregados
	FullReturnQty  int64 // fûts llenos recogidos
	EmptyReturnQty int64 // fûts vacíos devueltos
	BeerTTCTotal   decimal.Decimal
	ConsigneTotal  decimal.Decimal
}

// ReportRepository consultas de solo lectura para el dashboard y el reporte.
type ReportRepository interface {
	GetMovementTotals(ctx context.Context) (MovementTotals, error)
	// ListMovementsChrono devuelve todos los movimientos con nombres, en orden cronológico ascendente.
	ListMovementsChrono(ctx context.Context) ([]*entity.Movement, error)
}
