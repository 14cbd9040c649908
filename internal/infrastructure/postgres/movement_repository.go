package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento con los importes ya congelados y asigna su ID.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (dt, mtype, qty, client_id, beer_id, price_ttc_per_keg, consigne_per_keg, notes, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.Dt, movement.MType, movement.Qty, movement.ClientID, movement.BeerID,
		movement.PriceTTCPerKeg, movement.ConsignePerKeg, movement.Notes,
		movement.TransactionID, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID (sin nombres denormalizados).
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	query := `
		SELECT id, dt, mtype, qty, client_id, beer_id, price_ttc_per_keg, consigne_per_keg, notes, transaction_id, created_at
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Dt, &m.MType, &m.Qty, &m.ClientID, &m.BeerID,
		&m.PriceTTCPerKeg, &m.ConsignePerKeg, &m.Notes, &m.TransactionID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List devuelve movimientos con nombres de cliente/cerveza, fecha e id descendentes.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.dt, m.mtype, m.qty, m.client_id, c.name, m.beer_id, b.name,
		       m.price_ttc_per_keg, m.consigne_per_keg, m.notes, m.transaction_id, m.created_at
		FROM movements m
		JOIN clients c ON c.id = m.client_id
		JOIN beers   b ON b.id = m.beer_id
		ORDER BY m.dt DESC, m.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovementsWithNames(rows)
}

// Delete elimina un movimiento del ledger.
func (r *MovementRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil // ya no existe; idempotente
	}
	return nil
}

func scanMovementsWithNames(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.Dt, &m.MType, &m.Qty, &m.ClientID, &m.ClientName, &m.BeerID, &m.BeerName,
			&m.PriceTTCPerKeg, &m.ConsignePerKeg, &m.Notes, &m.TransactionID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
