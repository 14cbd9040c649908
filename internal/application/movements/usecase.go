package movements

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
	"github.com/tu-usuario/keg-tracer/internal/domain"
	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de fûts de forma transaccional:
// valida la entrada, congela el precio TTC de la cerveza dentro de la tx y
// persiste el movimiento con Commit o Rollback.
type RegisterMovementUseCase struct {
	txRunner        TxRunner
	clientRepo      repository.ClientRepository
	movementRepo    repository.MovementRepository
	defaultConsigne decimal.Decimal // se aplica cuando el movimiento no trae consigna
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	movementRepo repository.MovementRepository,
	defaultConsigne decimal.Decimal,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:        txRunner,
		clientRepo:      clientRepo,
		movementRepo:    movementRepo,
		defaultConsigne: defaultConsigne,
	}
}

// MovementInputDTO entrada para registrar un movimiento de fûts.
// Dt cero = hoy; Qty <= 0 = 1; ConsignePerKeg cero = consigna configurada.
type MovementInputDTO struct {
	Dt             time.Time
	MType          string
	ClientID       int64
	BeerID         int64
	Qty            int
	ConsignePerKeg decimal.Decimal
	Notes          string
}

// Register valida la entrada, congela el precio de la cerveza y persiste el movimiento.
// El cliente es autoritativo solo en qty/consigna por defecto; el servidor rechaza
// tipo, cliente o cerveza inválidos.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, input MovementInputDTO) (*entity.Movement, error) {
	if !entity.IsValidMovementType(input.MType) {
		return nil, domain.ErrInvalidInput
	}
	if input.ClientID <= 0 || input.BeerID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.ConsignePerKeg.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if input.Qty <= 0 {
		input.Qty = 1
	}
	if input.Dt.IsZero() {
		input.Dt = time.Now()
	}

	client, err := uc.clientRepo.GetByID(input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	movement := &entity.Movement{
		Dt:             input.Dt,
		MType:          input.MType,
		Qty:            input.Qty,
		ClientID:       input.ClientID,
		BeerID:         input.BeerID,
		ConsignePerKeg: input.ConsignePerKeg,
		Notes:          input.Notes,
		TransactionID:  uuid.New().String(),
		CreatedAt:      time.Now(),
	}
	if movement.ConsignePerKeg.IsZero() {
		movement.ConsignePerKeg = uc.defaultConsigne
	}

	// Congelar el precio y persistir en la misma transacción: un cambio de tarifa
	// concurrente no puede colarse entre la lectura y el insert.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		beerRepo repository.BeerRepository,
	) error {
		beer, err := beerRepo.GetByID(input.BeerID)
		if err != nil {
			return err
		}
		if beer == nil {
			return domain.ErrNotFound
		}
		movement.PriceTTCPerKeg = beer.PriceTTC
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// RegisterFromRequest adapta el request HTTP (JSON o formulario ya parseado) al caso de uso.
// dt inválido o ausente cae a hoy, igual que el original.
func (uc *RegisterMovementUseCase) RegisterFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	dt := time.Time{}
	if in.Dt != "" {
		if parsed, err := time.Parse("2006-01-02", in.Dt); err == nil {
			dt = parsed
		}
	}
	return uc.Register(ctx, MovementInputDTO{
		Dt:             dt,
		MType:          in.MType,
		ClientID:       in.ClientID,
		BeerID:         in.BeerID,
		Qty:            in.Qty,
		ConsignePerKeg: in.ConsignePerKeg,
		Notes:          in.Notes,
	})
}

// List devuelve los movimientos más recientes (fecha e id descendentes).
func (uc *RegisterMovementUseCase) List(limit, offset int) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// Delete elimina un movimiento del ledger.
func (uc *RegisterMovementUseCase) Delete(id int64) error {
	m, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.movementRepo.Delete(id)
}

// ToMovementResponse mapea la entidad al DTO de respuesta, incluyendo totales con signo.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                   m.ID,
		Dt:                   m.Dt.Format("2006-01-02"),
		MType:                m.MType,
		Qty:                  m.Qty,
		ClientID:             m.ClientID,
		ClientName:           m.ClientName,
		BeerID:               m.BeerID,
		BeerName:             m.BeerName,
		PriceTTCPerKeg:       m.PriceTTCPerKeg,
		ConsignePerKeg:       m.ConsignePerKeg,
		Notes:                m.Notes,
		TotalBeerTTC:         m.TotalBeerTTC(),
		TotalConsigne:        m.TotalConsigne(),
		TotalTTCWithConsigne: m.TotalTTCWithConsigne(),
	}
}
