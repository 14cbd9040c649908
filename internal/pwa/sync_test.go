package pwa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/keg-tracer/pkg/logger"
)

// newSyncServer monta un servidor de prueba con /api/ping y /api/movement.
// accept decide por registro si el movimiento se acepta.
func newSyncServer(t *testing.T, accept func(rec MovementRecord) bool, received *[]MovementRecord) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	})
	mux.HandleFunc("/api/movement", func(w http.ResponseWriter, r *http.Request) {
		var rec MovementRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		if !accept(rec) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "code": "VALIDATION"})
			return
		}
		*received = append(*received, rec)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "id": len(*received)})
	})
	return httptest.NewServer(mux)
}

func newOrchestrator(queue *Queue, baseURL string, notifier Notifier) *Orchestrator {
	return NewOrchestrator(queue, NewProbe(baseURL), NewSubmitter(baseURL), notifier, logger.Nop())
}

func TestSync_DrenaEnOrdenFIFO(t *testing.T) {
	var received []MovementRecord
	srv := newSyncServer(t, func(MovementRecord) bool { return true }, &received)
	defer srv.Close()

	queue := NewQueue(t.TempDir())
	first := RecordFromForm(formValues("1", "7", "2"))
	second := RecordFromForm(formValues("2", "3", "1"))
	_, err := queue.Append(first)
	require.NoError(t, err)
	_, err = queue.Append(second)
	require.NoError(t, err)

	orch := newOrchestrator(queue, srv.URL, nil)
	n, err := orch.Sync(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, received, 2)
	assert.Equal(t, first.LocalID, received[0].LocalID, "el primero capturado se entrega primero")
	assert.Equal(t, second.LocalID, received[1].LocalID)
	assert.Equal(t, 0, queue.Len(), "la cola debe quedar vacía tras entregar todo")
}

func TestSync_RechazoAbortaYConservaLaCola(t *testing.T) {
	var received []MovementRecord
	queue := NewQueue(t.TempDir())
	first := RecordFromForm(formValues("1", "7", "2"))
	bad := RecordFromForm(formValues("2", "3", "1"))
	third := RecordFromForm(formValues("3", "5", "1"))
	for _, rec := range []MovementRecord{first, bad, third} {
		_, err := queue.Append(rec)
		require.NoError(t, err)
	}

	srv := newSyncServer(t, func(rec MovementRecord) bool { return rec.LocalID != bad.LocalID }, &received)
	defer srv.Close()

	orch := newOrchestrator(queue, srv.URL, nil)
	n, err := orch.Sync(context.Background(), false)
	require.ErrorIs(t, err, ErrSendFailed)
	assert.Equal(t, 0, n)

	// Todo o nada: el rechazo del segundo deja la cola completa intacta,
	// incluido el primero ya entregado y el tercero nunca intentado.
	assert.Equal(t, 3, queue.Len())
	require.Len(t, received, 1, "el tercero no debe intentarse tras el rechazo")
	assert.Equal(t, first.LocalID, received[0].LocalID)
}

func TestSync_ColaVaciaNiSondaNiEnvia(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	orch := newOrchestrator(NewQueue(t.TempDir()), srv.URL, nil)
	n, err := orch.Sync(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, int64(0), hits.Load(), "con cola vacía no debe tocarse la red")
}

func TestSync_OfflineDejaColaIntacta(t *testing.T) {
	// Servidor cerrado de antemano: la sonda debe fallar.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	queue := NewQueue(t.TempDir())
	_, err := queue.Append(RecordFromForm(formValues("1", "7", "1")))
	require.NoError(t, err)

	orch := newOrchestrator(queue, srv.URL, nil)
	n, err := orch.Sync(context.Background(), false)
	require.ErrorIs(t, err, ErrOffline)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, queue.Len())
}

type captureNotifier struct{ messages []string }

func (n *captureNotifier) Notify(msg string) { n.messages = append(n.messages, msg) }

func TestSync_NotificaSoloSiSePide(t *testing.T) {
	var received []MovementRecord
	srv := newSyncServer(t, func(MovementRecord) bool { return true }, &received)
	defer srv.Close()

	queue := NewQueue(t.TempDir())
	_, err := queue.Append(RecordFromForm(formValues("1", "7", "1")))
	require.NoError(t, err)

	notifier := &captureNotifier{}
	orch := newOrchestrator(queue, srv.URL, notifier)
	_, err = orch.Sync(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "synchronisé")

	// Segunda pasada con cola vacía: sin aviso.
	_, err = orch.Sync(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, notifier.messages, 1)
}
