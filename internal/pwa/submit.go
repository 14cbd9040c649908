package pwa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrSendFailed la petición no llegó o el servidor respondió fuera de 2xx
	// (red caída, timeout, proxy, error del servidor). Reintentable.
	ErrSendFailed = errors.New("pwa: envío fallido")
	// ErrNotAccepted respuesta 2xx pero sin ok:true; el servidor habló y no
	// confirmó. También reintentable.
	ErrNotAccepted = errors.New("pwa: movimiento no aceptado")
)

// Submitter envía movimientos individuales a POST /api/movement.
type Submitter struct {
	client  *http.Client
	baseURL string
}

// NewSubmitter construye el cliente de envío.
func NewSubmitter(baseURL string) *Submitter {
	return &Submitter{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

// Submit envía un registro al servidor. Solo una respuesta 2xx con ok:true
// cuenta como entregado; cualquier otra cosa deja el registro como no
// entregado para que el llamador decida encolar o abortar.
func (s *Submitter) Submit(ctx context.Context, rec MovementRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: serializar: %v", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/movement", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Keg-PWA", "1")
	req.Header.Set("X-Local-Id", rec.LocalID)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", ErrSendFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: HTTP %d", ErrSendFailed, resp.StatusCode)
	}

	var ack struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}
	// Un cuerpo 2xx no-JSON (proxy cautivo, página de error) tampoco es aceptación.
	if err := json.Unmarshal(raw, &ack); err != nil {
		return fmt.Errorf("%w: respuesta ilegible (HTTP %d)", ErrNotAccepted, resp.StatusCode)
	}
	if !ack.OK {
		return fmt.Errorf("%w: %s", ErrNotAccepted, ack.Message)
	}
	return nil
}
