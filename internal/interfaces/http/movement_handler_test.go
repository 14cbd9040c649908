package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
	"github.com/tu-usuario/keg-tracer/internal/application/movements"
	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeClientRepo struct{ clients map[int64]*entity.Client }

func (f *fakeClientRepo) Create(c *entity.Client) error { return nil }
func (f *fakeClientRepo) GetByID(id int64) (*entity.Client, error) {
	return f.clients[id], nil
}
func (f *fakeClientRepo) GetByName(name string) (*entity.Client, error) { return nil, nil }
func (f *fakeClientRepo) List() ([]*entity.Client, error)              { return nil, nil }

type fakeBeerRepo struct{ beers map[int64]*entity.Beer }

func (f *fakeBeerRepo) Create(b *entity.Beer) error                { return nil }
func (f *fakeBeerRepo) GetByID(id int64) (*entity.Beer, error)     { return f.beers[id], nil }
func (f *fakeBeerRepo) GetByName(name string) (*entity.Beer, error) { return nil, nil }
func (f *fakeBeerRepo) List() ([]*entity.Beer, error)              { return nil, nil }

type fakeMovementRepo struct {
	movements []*entity.Movement
	nextID    int64
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	f.nextID++
	m.ID = f.nextID
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) GetByID(id int64) (*entity.Movement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	return f.movements, nil
}

func (f *fakeMovementRepo) Delete(id int64) error { return nil }

type fakeTxRunner struct {
	movRepo  repository.MovementRepository
	beerRepo repository.BeerRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	beerRepo repository.BeerRepository,
) error) error {
	return fn(f.movRepo, f.beerRepo)
}

// ── Fixture ───────────────────────────────────────────────────────────────────

func newTestApp(t *testing.T) (*fiber.App, *fakeMovementRepo) {
	t.Helper()

	movRepo := &fakeMovementRepo{}
	clientRepo := &fakeClientRepo{clients: map[int64]*entity.Client{
		1: {ID: 1, Name: "Bar du Port"},
	}}
	beerRepo := &fakeBeerRepo{beers: map[int64]*entity.Beer{
		7: {ID: 7, Name: "Coreff Blonde 20L", PriceTTC: decimal.RequireFromString("68.00")},
	}}
	txRunner := &fakeTxRunner{movRepo: movRepo, beerRepo: beerRepo}

	uc := movements.NewRegisterMovementUseCase(
		txRunner, clientRepo, movRepo, decimal.RequireFromString("30.00"),
	)

	app := fiber.New()
	Router(app, RouterDeps{RegisterMovement: uc})
	return app, movRepo
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegisterJSON_Acepta(t *testing.T) {
	app, movRepo := newTestApp(t)

	body, _ := json.Marshal(dto.RegisterMovementRequest{
		Dt:       "2026-08-20",
		MType:    entity.MovementTypeDelivery,
		ClientID: 1,
		BeerID:   7,
		Qty:      2,
	})
	req := httptest.NewRequest("POST", "/api/movement", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Keg-PWA", "1")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.MovementAcceptedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.OK, "la aceptación debe llevar ok:true")
	assert.Equal(t, int64(1), out.ID)

	require.Len(t, movRepo.movements, 1)
	assert.True(t, movRepo.movements[0].PriceTTCPerKeg.Equal(decimal.RequireFromString("68.00")),
		"el precio debe congelarse desde el catálogo")
}

func TestRegisterJSON_RechazaConOKFalse(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name       string
		body       dto.RegisterMovementRequest
		wantStatus int
	}{
		{"tipo inválido", dto.RegisterMovementRequest{MType: "venta", ClientID: 1, BeerID: 7}, fiber.StatusBadRequest},
		{"cliente inexistente", dto.RegisterMovementRequest{MType: entity.MovementTypeDelivery, ClientID: 99, BeerID: 7}, fiber.StatusNotFound},
		{"cerveza inexistente", dto.RegisterMovementRequest{MType: entity.MovementTypeDelivery, ClientID: 1, BeerID: 99}, fiber.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.body)
			req := httptest.NewRequest("POST", "/api/movement", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var out dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.False(t, out.OK, "todo rechazo debe llevar ok:false")
			assert.NotEmpty(t, out.Code)
		})
	}
}

func TestRegisterForm_RedirigeAlListado(t *testing.T) {
	app, movRepo := newTestApp(t)

	form := "mtype=delivery&client_id=1&beer_id=7&qty=3&dt=2026-08-21"
	req := httptest.NewRequest("POST", "/movements/add", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/movements", resp.Header.Get("Location"))

	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, 3, movRepo.movements[0].Qty)
}

func TestPing_SinCache(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/ping", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
}
