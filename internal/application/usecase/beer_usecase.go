package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
	"github.com/tu-usuario/keg-tracer/internal/domain"
	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

// BeerUseCase casos de uso CRUD para el catálogo de cervezas.
type BeerUseCase struct {
	repo repository.BeerRepository
}

// NewBeerUseCase construye el caso de uso.
func NewBeerUseCase(repo repository.BeerRepository) *BeerUseCase {
	return &BeerUseCase{repo: repo}
}

// Create crea una cerveza nueva. El precio acepta coma decimal francesa ("102,00").
func (uc *BeerUseCase) Create(in dto.CreateBeerRequest) (*dto.BeerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	priceStr := strings.ReplaceAll(strings.TrimSpace(in.PriceTTC), ",", ".")
	if priceStr == "" {
		priceStr = "0"
	}
	price, err := decimal.NewFromString(priceStr)
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	beer := &entity.Beer{Name: name, PriceTTC: price}
	if err := uc.repo.Create(beer); err != nil {
		return nil, err
	}
	return &dto.BeerResponse{ID: beer.ID, Name: beer.Name, PriceTTC: beer.PriceTTC}, nil
}

// List devuelve el catálogo ordenado por nombre.
func (uc *BeerUseCase) List() ([]dto.BeerResponse, error) {
	beers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BeerResponse, 0, len(beers))
	for _, b := range beers {
		out = append(out, dto.BeerResponse{ID: b.ID, Name: b.Name, PriceTTC: b.PriceTTC})
	}
	return out, nil
}
