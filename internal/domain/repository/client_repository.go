package repository

import "github.com/tu-usuario/keg-tracer/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	GetByName(name string) (*entity.Client, error)
	List() ([]*entity.Client, error)
}
