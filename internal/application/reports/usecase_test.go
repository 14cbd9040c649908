package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/keg-tracer/internal/application/reports"
	"github.com/tu-usuario/keg-tracer/internal/domain/entity"
	"github.com/tu-usuario/keg-tracer/internal/domain/repository"
)

type fakeReportRepo struct {
	totals repository.MovementTotals
	moves  []*entity.Movement
}

func (r *fakeReportRepo) GetMovementTotals(ctx context.Context) (repository.MovementTotals, error) {
	return r.totals, nil
}
func (r *fakeReportRepo) ListMovementsChrono(ctx context.Context) ([]*entity.Movement, error) {
	return r.moves, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGetDashboard_KegsOutYGranTotal(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{totals: repository.MovementTotals{
		DeliveredQty:   10,
		FullReturnQty:  2,
		EmptyReturnQty: 5,
		BeerTTCTotal:   d("544.00"),
		ConsigneTotal:  d("90.00"),
	}})

	dash, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), dash.DeliveredQty)
	assert.Equal(t, int64(3), dash.KegsOut, "10 entregados - 2 llenos - 5 vacíos")
	assert.True(t, dash.GrandTotal.Equal(d("634.00")))
}

func TestGetReport_AgrupaPorClienteYTotaliza(t *testing.T) {
	dt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	moves := []*entity.Movement{
		// Bar du Port: entrega de 2 Blonde (2×68 + 2×30) y devolución de 1 vacío (−30)
		{ID: 1, Dt: dt, MType: entity.MovementTypeDelivery, Qty: 2, ClientName: "Bar du Port",
			BeerName: "Coreff Blonde 20L", PriceTTCPerKeg: d("68.00"), ConsignePerKeg: d("30.00")},
		{ID: 2, Dt: dt.AddDate(0, 0, 3), MType: entity.MovementTypeEmptyReturn, Qty: 1, ClientName: "Bar du Port",
			BeerName: "Coreff Blonde 20L", PriceTTCPerKeg: d("68.00"), ConsignePerKeg: d("30.00")},
		// Crêperie: entrega de 1 IPA y recogida del mismo fût lleno (se anulan)
		{ID: 3, Dt: dt.AddDate(0, 0, 1), MType: entity.MovementTypeDelivery, Qty: 1, ClientName: "Crêperie Ty Gwen",
			BeerName: "Coreff IPA 20L", PriceTTCPerKeg: d("85.00"), ConsignePerKeg: d("30.00")},
		{ID: 4, Dt: dt.AddDate(0, 0, 8), MType: entity.MovementTypeFullReturn, Qty: 1, ClientName: "Crêperie Ty Gwen",
			BeerName: "Coreff IPA 20L", PriceTTCPerKeg: d("85.00"), ConsignePerKeg: d("30.00")},
	}
	uc := reports.NewReportUseCase(&fakeReportRepo{moves: moves})

	report, err := uc.GetReport(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Movements, 4)
	require.Len(t, report.ByClient, 2)

	// Orden alfabético por cliente
	assert.Equal(t, "Bar du Port", report.ByClient[0].ClientName)
	assert.Equal(t, "Crêperie Ty Gwen", report.ByClient[1].ClientName)

	// Bar du Port: cerveza 136, consigna 60-30=30, total 166
	assert.True(t, report.ByClient[0].BeerTTC.Equal(d("136.00")))
	assert.True(t, report.ByClient[0].Consigne.Equal(d("30.00")))
	assert.True(t, report.ByClient[0].Total.Equal(d("166.00")))

	// Crêperie: entrega y recogida de lleno se anulan
	assert.True(t, report.ByClient[1].Total.IsZero())

	// Globales = suma de ambos clientes
	assert.True(t, report.BeerTTCTotal.Equal(d("136.00")))
	assert.True(t, report.ConsigneTotal.Equal(d("30.00")))
	assert.True(t, report.GrandTotal.Equal(d("166.00")))
}

func TestGetReport_SinMovimientos(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{})

	report, err := uc.GetReport(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Movements)
	assert.Empty(t, report.ByClient)
	assert.True(t, report.GrandTotal.IsZero())
}
