package pwa

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formValues(clientID, beerID, qty string) url.Values {
	return url.Values{
		"mtype":     {"delivery"},
		"client_id": {clientID},
		"beer_id":   {beerID},
		"qty":       {qty},
	}
}

func TestQueue_DuraEntreReaperturas(t *testing.T) {
	dir := t.TempDir()

	q := NewQueue(dir)
	_, err := q.Append(RecordFromForm(formValues("1", "7", "2")))
	require.NoError(t, err)
	_, err = q.Append(RecordFromForm(formValues("2", "3", "1")))
	require.NoError(t, err)

	// Reabrir la cola simula reiniciar la app: los pendientes deben seguir ahí.
	q2 := NewQueue(dir)
	records := q2.Read()
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ClientID, "el orden de captura debe conservarse")
	assert.Equal(t, int64(2), records[1].ClientID)
}

func TestQueue_ArchivoCorruptoCuentaComoVacia(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, queueFile), []byte("{basura"), 0o644))

	q := NewQueue(dir)
	assert.Empty(t, q.Read(), "un archivo corrupto no debe bloquear la captura")
	assert.Equal(t, 0, q.Len())

	// Y la cola sigue siendo usable después
	n, err := q.Append(RecordFromForm(formValues("1", "7", "1")))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQueue_OnChangeReflejaPendientes(t *testing.T) {
	q := NewQueue(t.TempDir())

	var seen []int
	q.OnChange(func(pending int) { seen = append(seen, pending) })

	_, err := q.Append(RecordFromForm(formValues("1", "7", "1")))
	require.NoError(t, err)
	_, err = q.Append(RecordFromForm(formValues("1", "7", "1")))
	require.NoError(t, err)
	require.NoError(t, q.Clear())

	assert.Equal(t, []int{1, 2, 0}, seen, "el indicador debe seguir cada mutación persistida")
}

func TestQueue_ClearDejaArchivoVacio(t *testing.T) {
	dir := t.TempDir()
	q := NewQueue(dir)
	_, err := q.Append(RecordFromForm(formValues("1", "7", "1")))
	require.NoError(t, err)

	require.NoError(t, q.Clear())
	assert.Equal(t, 0, NewQueue(dir).Len())
}

func TestRecordFromForm_Defaults(t *testing.T) {
	rec := RecordFromForm(url.Values{
		"client_id": {"1"},
		"beer_id":   {"7"},
	})

	assert.Equal(t, "delivery", rec.MType, "tipo ausente cae a entrega")
	assert.Equal(t, 1, rec.Qty, "qty ausente cae a 1")
	assert.NotEmpty(t, rec.Dt, "dt ausente cae a hoy")
	assert.NotEmpty(t, rec.LocalID)
	assert.True(t, rec.ConsignePerKeg.IsZero())
	assert.NoError(t, rec.Validate())
}

func TestRecordFromForm_ConsignaConComa(t *testing.T) {
	rec := RecordFromForm(url.Values{
		"client_id":        {"1"},
		"beer_id":          {"7"},
		"consigne_per_keg": {"30,50"},
	})
	assert.Equal(t, "30.5", rec.ConsignePerKeg.String())
}

func TestRecord_ValidateRechaza(t *testing.T) {
	cases := []struct {
		name   string
		values url.Values
	}{
		{"tipo inválido", url.Values{"mtype": {"venta"}, "client_id": {"1"}, "beer_id": {"7"}}},
		{"sin cliente", url.Values{"beer_id": {"7"}}},
		{"sin cerveza", url.Values{"client_id": {"1"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, RecordFromForm(tc.values).Validate())
		})
	}
}
