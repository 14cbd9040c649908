package pwa

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tu-usuario/keg-tracer/pkg/logger"
)

// SubmitOutcome resultado de interceptar un envío del formulario de movimientos.
// La navegación nunca cambia: entregado o encolado, el usuario sigue al listado.
type SubmitOutcome struct {
	Delivered  bool
	Queued     bool
	Notice     string
	RedirectTo string
}

// redirectTarget destino tras el envío, igual que el redirect del servidor.
const redirectTarget = "/movements"

// Adapter intercepta el envío del formulario de movimientos: entrega directa
// cuando hay red, cola local cuando no la hay. Reemplaza el handler submit
// del frontend original.
type Adapter struct {
	queue     *Queue
	orch      *Orchestrator
	submitter *Submitter
	log       *logger.Logger
}

// NewAdapter construye el adaptador.
func NewAdapter(queue *Queue, orch *Orchestrator, submitter *Submitter, log *logger.Logger) *Adapter {
	return &Adapter{queue: queue, orch: orch, submitter: submitter, log: log}
}

// HandleSubmit procesa los campos del formulario y decide entregar o encolar.
//
// Un registro que no pasa la validación local se encola igualmente en modo
// degradado: mejor guardar datos dudosos que perder una entrega hecha en el
// camión sin cobertura. El servidor los rechazará en el sync y quedarán a la
// vista del usuario como pendientes.
func (a *Adapter) HandleSubmit(ctx context.Context, values url.Values) (SubmitOutcome, error) {
	rec := RecordFromForm(values)
	out := SubmitOutcome{RedirectTo: redirectTarget}

	if err := rec.Validate(); err != nil {
		pending, qerr := a.queue.Append(rec)
		if qerr != nil {
			return out, qerr
		}
		a.log.Warn().Str("local_id", rec.LocalID).Msg("formulario incompleto, encolado en modo degradado")
		out.Queued = true
		out.Notice = noticeQueued(pending)
		return out, nil
	}

	// Con backlog pendiente el registro nuevo va detrás, para conservar el
	// orden de captura, y se intenta drenar todo de una vez.
	if a.queue.Len() > 0 {
		pending, err := a.queue.Append(rec)
		if err != nil {
			return out, err
		}
		if delivered, err := a.orch.Sync(ctx, false); err == nil {
			out.Delivered = true
			out.Notice = noticeSynced(delivered)
			return out, nil
		}
		out.Queued = true
		out.Notice = noticeQueued(pending)
		return out, nil
	}

	err := a.submitter.Submit(ctx, rec)
	if err == nil {
		out.Delivered = true
		out.Notice = "Mouvement enregistré"
		return out, nil
	}

	// Cualquier fallo de envío encola: transporte y rechazo se tratan igual,
	// el registro queda reintentable y la navegación no cambia.
	a.log.Info().Str("local_id", rec.LocalID).Err(err).Msg("envío fallido, movimiento encolado")
	pending, qerr := a.queue.Append(rec)
	if qerr != nil {
		return out, qerr
	}
	out.Queued = true
	out.Notice = noticeQueued(pending)
	return out, nil
}

// SyncNow dispara una sincronización manual (el botón "Synchroniser" de la UI).
func (a *Adapter) SyncNow(ctx context.Context) (int, error) {
	return a.orch.Sync(ctx, true)
}

// Pending devuelve cuántos movimientos esperan envío, para el badge de la UI.
func (a *Adapter) Pending() int {
	return a.queue.Len()
}

func noticeQueued(pending int) string {
	if pending == 1 {
		return "Hors ligne : 1 mouvement en attente"
	}
	return fmt.Sprintf("Hors ligne : %d mouvements en attente", pending)
}

func noticeSynced(delivered int) string {
	if delivered == 1 {
		return "1 mouvement synchronisé"
	}
	return fmt.Sprintf("%d mouvements synchronisés", delivered)
}
