package pwa

import (
	"context"
	"net/http"
	"time"
)

// Probe sonda de conectividad contra el endpoint /api/ping del servidor.
type Probe struct {
	client  *http.Client
	baseURL string
}

// NewProbe construye la sonda. Un timeout corto evita que una red colgada
// retrase la captura de movimientos.
func NewProbe(baseURL string) *Probe {
	return &Probe{
		client:  &http.Client{Timeout: 3 * time.Second},
		baseURL: baseURL,
	}
}

// Online devuelve true solo si el servidor respondió a la sonda. Cualquier
// fallo de red, DNS o timeout cuenta como offline; la decisión real de
// entrega la toma el envío, no la sonda.
func (p *Probe) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/ping", nil)
	if err != nil {
		return false
	}
	// Sin caché: la sonda debe tocar el servidor de verdad, no un intermediario.
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return true
}
