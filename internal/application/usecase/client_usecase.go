package usecase

import (
	"strings"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
	"github.com/tu-usuario/keg-tracer/internal/domain"
	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente nuevo. Nombre obligatorio y único (igual que el original).
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	client := &entity.Client{Name: name}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return &dto.ClientResponse{ID: client.ID, Name: client.Name}, nil
}

// List devuelve todos los clientes ordenados por nombre.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	clients, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.ClientResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}
