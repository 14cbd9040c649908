package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
)

// Catálogo inicial de fûts con sus tarifas TTC (el catálogo Coreff + cidre del negocio).
var beerCatalog = []struct {
	name  string
	price string
}{
	{"Coreff Blonde 20L", "68.00"},
	{"Coreff Blonde 30L", "102.00"},
	{"Coreff Blonde Bio 20L", "74.00"},
	{"Coreff Blonde Bio 30L", "110.00"},
	{"Coreff IPA 20L", "85.00"},
	{"Coreff IPA 30L", "127.00"},
	{"Coreff Blanche 20L", "81.00"},  // pas de 30L
	{"Coreff Rousse 20L", "82.00"},   // uniquement 20L
	{"Coreff Ambrée 22L", "78.00"},   // uniquement 22L
	{"Cidre Val de Rance 20L", "96.00"},
}

// SeedCatalog inserta las cervezas del catálogo que aún no existan.
// Idempotente: se ejecuta en cada arranque del servidor.
func (uc *BeerUseCase) SeedCatalog() (int, error) {
	existing, err := uc.repo.List()
	if err != nil {
		return 0, err
	}
	known := make(map[string]bool, len(existing))
	for _, b := range existing {
		known[b.Name] = true
	}

	added := 0
	for _, item := range beerCatalog {
		if known[item.name] {
			continue
		}
		beer := &entity.Beer{Name: item.name, PriceTTC: decimal.RequireFromString(item.price)}
		if err := uc.repo.Create(beer); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
