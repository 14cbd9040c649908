// El comando kegpwa es el cliente offline del keg-tracer: captura movimientos
// de fûts en el terreno, los encola localmente cuando no hay red y los
// sincroniza con el servidor cuando vuelve la conectividad.
//
//	kegpwa add -client 1 -beer 7 -qty 2 [-mtype delivery] [-dt 2026-08-23]
//	kegpwa sync
//	kegpwa pending
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tu-usuario/keg-tracer/internal/pwa"
	"github.com/tu-usuario/keg-tracer/pkg/config"
	"github.com/tu-usuario/keg-tracer/pkg/logger"
)

// stdoutNotifier imprime los avisos de sincronización al usuario.
type stdoutNotifier struct{}

func (stdoutNotifier) Notify(message string) {
	fmt.Println(message)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.App.Env, "warn")

	stateDir := cfg.PWA.StateDir
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		stateDir = filepath.Join(base, "keg-tracer")
	}

	queue := pwa.NewQueue(stateDir)
	probe := pwa.NewProbe(cfg.PWA.ServerURL)
	submitter := pwa.NewSubmitter(cfg.PWA.ServerURL)
	var notifier pwa.Notifier
	if cfg.PWA.Notify {
		notifier = stdoutNotifier{}
	}
	orch := pwa.NewOrchestrator(queue, probe, submitter, notifier, log)
	adapter := pwa.NewAdapter(queue, orch, submitter, log)

	ctx := context.Background()

	switch os.Args[1] {
	case "add":
		runAdd(ctx, adapter, os.Args[2:])
	case "sync":
		runSync(ctx, adapter)
	case "pending":
		runPending(queue)
	default:
		usage()
		os.Exit(2)
	}
}

func runAdd(ctx context.Context, adapter *pwa.Adapter, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	clientID := fs.Int64("client", 0, "id del cliente")
	beerID := fs.Int64("beer", 0, "id de la cerveza")
	qty := fs.Int("qty", 1, "número de fûts")
	mtype := fs.String("mtype", "delivery", "delivery | full-return | empty-return")
	dt := fs.String("dt", "", "fecha YYYY-MM-DD (vacío = hoy)")
	consigne := fs.String("consigne", "", "consigna por fût (vacío = la del servidor)")
	notes := fs.String("notes", "", "notas libres")
	_ = fs.Parse(args)

	values := url.Values{
		"mtype":            {*mtype},
		"client_id":        {strconv.FormatInt(*clientID, 10)},
		"beer_id":          {strconv.FormatInt(*beerID, 10)},
		"qty":              {strconv.Itoa(*qty)},
		"dt":               {*dt},
		"consigne_per_keg": {*consigne},
		"notes":            {*notes},
	}

	out, err := adapter.HandleSubmit(ctx, values)
	if err != nil {
		fmt.Fprintln(os.Stderr, "registrar movimiento:", err)
		os.Exit(1)
	}
	fmt.Println(out.Notice)
}

func runSync(ctx context.Context, adapter *pwa.Adapter) {
	n, err := adapter.SyncNow(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sync:", err)
		os.Exit(1)
	}
	if n == 0 {
		fmt.Println("Rien à synchroniser")
	}
}

func runPending(queue *pwa.Queue) {
	records := queue.Read()
	if len(records) == 0 {
		fmt.Println("Aucun mouvement en attente")
		return
	}
	for _, rec := range records {
		fmt.Printf("%s  %s  client=%d  beer=%d  qty=%d  (%s)\n",
			rec.Dt, rec.MType, rec.ClientID, rec.BeerID, rec.Qty, rec.LocalID)
	}
	fmt.Printf("%d mouvement(s) en attente\n", len(records))
}

func usage() {
	fmt.Fprintln(os.Stderr, `uso: kegpwa <comando>

comandos:
  add      registrar un movimiento (entrega directa o cola local)
  sync     sincronizar los movimientos pendientes
  pending  listar los movimientos en attente`)
}
