package repository

import "github.com/tu-usuario/keg-tracer/internal/domain/entity"

// BeerRepository puerto de persistencia para el catálogo de cervezas.
type BeerRepository interface {
	Create(beer *entity.Beer) error
	GetByID(id int64) (*entity.Beer, error)
	GetByName(name string) (*entity.Beer, error)
	List() ([]*entity.Beer, error)
}
