package repository

import "github.com/tu-usuario/keg-tracer/internal/domain/entity"

// MovementRepository puerto de persistencia para el ledger de movimientos.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id int64) (*entity.Movement, error)
	// List devuelve movimientos con nombres de cliente/cerveza, ordenados por fecha e id descendentes.
	List(limit, offset int) ([]*entity.Movement, error)
	Delete(id int64) error
}
