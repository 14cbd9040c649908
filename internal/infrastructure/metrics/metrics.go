// Package metrics expone los contadores Prometheus del keg-tracer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsRegistered movimientos aceptados, por tipo y origen.
	// source: "pwa" (cliente offline), "form" (formulario nativo), "api" (JSON directo).
	MovementsRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keg_tracer",
		Name:      "movements_registered_total",
		Help:      "Movimientos de fûts aceptados por el servidor.",
	}, []string{"mtype", "source"})

	// MovementsRejected movimientos rechazados por validación o catálogo.
	MovementsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keg_tracer",
		Name:      "movements_rejected_total",
		Help:      "Movimientos rechazados (entrada inválida o recurso inexistente).",
	}, []string{"reason"})

	// PingRequests sondas de conectividad recibidas en /api/ping.
	PingRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "keg_tracer",
		Name:      "ping_requests_total",
		Help:      "Sondas de conectividad del cliente offline.",
	})
)
