package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard y el reporte.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetMovementTotals agrega el ledger completo en una sola consulta.
// Los importes llevan el signo del tipo: entrega débito, devoluciones crédito
// (la recogida de fût lleno abona también la cerveza; el vacío solo la consigna).
func (r *ReportRepo) GetMovementTotals(ctx context.Context) (repository.MovementTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(qty) FILTER (WHERE mtype = 'delivery'),     0) AS delivered_qty,
	    COALESCE(SUM(qty) FILTER (WHERE mtype = 'full-return'),  0) AS full_return_qty,
	    COALESCE(SUM(qty) FILTER (WHERE mtype = 'empty-return'), 0) AS empty_return_qty,
	    COALESCE(SUM(
	        CASE mtype
	            WHEN 'delivery'    THEN  price_ttc_per_keg * qty
	            WHEN 'full-return' THEN -price_ttc_per_keg * qty
	            ELSE 0
	        END), 0)                                                 AS beer_ttc_total,
	    COALESCE(SUM(
	        CASE mtype
	            WHEN 'delivery' THEN  consigne_per_keg * qty
	            ELSE                 -consigne_per_keg * qty
	        END), 0)                                                 AS consigne_total
	FROM movements`

	var totals repository.MovementTotals
	err := r.pool.QueryRow(ctx, query).Scan(
		&totals.DeliveredQty,
		&totals.FullReturnQty,
		&totals.EmptyReturnQty,
		&totals.BeerTTCTotal,
		&totals.ConsigneTotal,
	)
	if err != nil {
		return repository.MovementTotals{}, fmt.Errorf("report.GetMovementTotals: %w", err)
	}
	return totals, nil
}

// ListMovementsChrono devuelve todo el ledger con nombres, en orden cronológico ascendente.
func (r *ReportRepo) ListMovementsChrono(ctx context.Context) ([]*entity.Movement, error) {
	const query = `
	SELECT m.id, m.dt, m.mtype, m.qty, m.client_id, c.name, m.beer_id, b.name,
	       m.price_ttc_per_keg, m.consigne_per_keg, m.notes, m.transaction_id, m.created_at
	FROM movements m
	JOIN clients c ON c.id = m.client_id
	JOIN beers   b ON b.id = m.beer_id
	ORDER BY m.dt ASC, m.id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ListMovementsChrono: %w", err)
	}
	defer rows.Close()

	moves, err := scanMovementsWithNames(rows)
	if err != nil {
		return nil, fmt.Errorf("report.ListMovementsChrono: %w", err)
	}
	return moves, nil
}
