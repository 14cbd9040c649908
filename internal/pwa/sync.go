package pwa

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tu-usuario/keg-tracer/pkg/logger"
)

// ErrOffline la sonda no alcanzó al servidor; la cola queda intacta.
var ErrOffline = errors.New("pwa: servidor inalcanzable")

// Notifier recibe avisos de sincronización para la UI (toast, stdout).
type Notifier interface {
	Notify(message string)
}

// Orchestrator drena la cola pendiente contra el servidor. Una sola
// sincronización a la vez; los reintentos concurrentes esperan en el mutex.
type Orchestrator struct {
	mu        sync.Mutex
	queue     *Queue
	probe     *Probe
	submitter *Submitter
	notifier  Notifier
	log       *logger.Logger
}

// NewOrchestrator construye el orquestador. notifier puede ser nil.
func NewOrchestrator(queue *Queue, probe *Probe, submitter *Submitter, notifier Notifier, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		queue:     queue,
		probe:     probe,
		submitter: submitter,
		notifier:  notifier,
		log:       log,
	}
}

// Sync intenta entregar todos los pendientes en orden FIFO, todo o nada:
//
//   - cola vacía: éxito inmediato, sin sonda y sin tocar la red;
//   - sonda offline: ErrOffline, cola intacta;
//   - primer envío fallido o rechazado: se aborta y la cola queda intacta
//     entera, para que el siguiente intento repita desde el principio;
//   - todos entregados: la cola se vacía de una sola vez.
//
// Devuelve cuántos movimientos se entregaron en esta pasada.
func (o *Orchestrator) Sync(ctx context.Context, notify bool) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	pending := o.queue.Read()
	if len(pending) == 0 {
		return 0, nil
	}

	if !o.probe.Online(ctx) {
		o.log.Debug().Msg("sync: servidor inalcanzable, cola intacta")
		return 0, ErrOffline
	}

	for i, rec := range pending {
		if err := o.submitter.Submit(ctx, rec); err != nil {
			o.log.Warn().
				Int("posicion", i+1).
				Int("pendientes", len(pending)).
				Str("local_id", rec.LocalID).
				Err(err).
				Msg("sync: envío fallido, cola intacta")
			return 0, err
		}
	}

	if err := o.queue.Clear(); err != nil {
		return 0, err
	}
	o.log.Info().Int("entregados", len(pending)).Msg("sync: cola drenada")
	if notify && o.notifier != nil {
		o.notifier.Notify(fmt.Sprintf("%d mouvement(s) synchronisé(s)", len(pending)))
	}
	return len(pending), nil
}
