// Package pwa implementa el cliente offline del keg-tracer: una cola local
// durable de movimientos pendientes, una sonda de conectividad, el envío al
// servidor y el orquestador de sincronización. Es el equivalente del service
// worker de la app original, expresado como librería reutilizable por el CLI.
package pwa

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/keg-tracer/internal/domain"
	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
)

// MovementRecord un movimiento capturado localmente, pendiente de envío.
// Es el mismo shape que espera POST /api/movement; local_id identifica el
// registro de punta a punta para trazar reenvíos.
type MovementRecord struct {
	LocalID        string          `json:"local_id"`
	Dt             string          `json:"dt"`
	MType          string          `json:"mtype"`
	ClientID       int64           `json:"client_id"`
	BeerID         int64           `json:"beer_id"`
	Qty            int             `json:"qty"`
	ConsignePerKeg decimal.Decimal `json:"consigne_per_keg"`
	Notes          string          `json:"notes"`
	CapturedAt     time.Time       `json:"captured_at"`
}

// RecordFromForm construye un registro desde los campos del formulario de
// movimientos, aplicando los mismos defaults que el servidor: dt ausente =
// hoy, qty ausente o inválida = 1, tipo ausente = entrega.
func RecordFromForm(values url.Values) MovementRecord {
	dt := strings.TrimSpace(values.Get("dt"))
	if dt == "" {
		dt = time.Now().Format("2006-01-02")
	}
	mtype := strings.TrimSpace(values.Get("mtype"))
	if mtype == "" {
		mtype = entity.MovementTypeDelivery
	}
	qty, err := strconv.Atoi(values.Get("qty"))
	if err != nil || qty <= 0 {
		qty = 1
	}
	clientID, _ := strconv.ParseInt(values.Get("client_id"), 10, 64)
	beerID, _ := strconv.ParseInt(values.Get("beer_id"), 10, 64)

	consigne := decimal.Zero
	if s := strings.TrimSpace(values.Get("consigne_per_keg")); s != "" {
		// coma decimal francesa aceptada, igual que el servidor
		if parsed, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ".")); err == nil {
			consigne = parsed
		}
	}

	return MovementRecord{
		LocalID:        uuid.New().String(),
		Dt:             dt,
		MType:          mtype,
		ClientID:       clientID,
		BeerID:         beerID,
		Qty:            qty,
		ConsignePerKeg: consigne,
		Notes:          strings.TrimSpace(values.Get("notes")),
		CapturedAt:     time.Now(),
	}
}

// Validate valida lo mínimo que el servidor rechazaría de plano.
func (r MovementRecord) Validate() error {
	if !entity.IsValidMovementType(r.MType) {
		return domain.ErrInvalidInput
	}
	if r.ClientID <= 0 || r.BeerID <= 0 {
		return domain.ErrInvalidInput
	}
	if r.ConsignePerKeg.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}
