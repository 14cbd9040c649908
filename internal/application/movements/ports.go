package movements

import (
	"context"

	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que congelar el precio de la cerveza y persistir el movimiento sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		beerRepo repository.BeerRepository,
	) error) error
}
