package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/keg-tracer/internal/domain"
	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

var _ repository.BeerRepository = (*BeerRepo)(nil)

// BeerRepo implementación del puerto BeerRepository sobre PostgreSQL (usable con pool o tx).
type BeerRepo struct {
	q Querier
}

// NewBeerRepository construye el adaptador de persistencia para el catálogo. Pasar pool o tx (Querier).
func NewBeerRepository(q Querier) *BeerRepo {
	return &BeerRepo{q: q}
}

// Create persiste una cerveza nueva y asigna su ID.
func (r *BeerRepo) Create(beer *entity.Beer) error {
	query := `INSERT INTO beers (name, price_ttc) VALUES ($1, $2) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, beer.Name, beer.PriceTTC).Scan(&beer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert beer: %w", err)
	}
	return nil
}

// GetByID obtiene una cerveza por ID.
func (r *BeerRepo) GetByID(id int64) (*entity.Beer, error) {
	query := `SELECT id, name, price_ttc FROM beers WHERE id = $1`
	var b entity.Beer
	err := r.q.QueryRow(context.Background(), query, id).Scan(&b.ID, &b.Name, &b.PriceTTC)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beer: %w", err)
	}
	return &b, nil
}

// GetByName obtiene una cerveza por nombre exacto.
func (r *BeerRepo) GetByName(name string) (*entity.Beer, error) {
	query := `SELECT id, name, price_ttc FROM beers WHERE name = $1`
	var b entity.Beer
	err := r.q.QueryRow(context.Background(), query, name).Scan(&b.ID, &b.Name, &b.PriceTTC)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beer by name: %w", err)
	}
	return &b, nil
}

// List devuelve el catálogo ordenado por nombre.
func (r *BeerRepo) List() ([]*entity.Beer, error) {
	query := `SELECT id, name, price_ttc FROM beers ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Beer
	for rows.Next() {
		var b entity.Beer
		if err := rows.Scan(&b.ID, &b.Name, &b.PriceTTC); err != nil {
			return nil, fmt.Errorf("scan beer: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
