package pwa

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// queueFile nombre del archivo de la cola. El sufijo _v1 versiona el esquema:
// un cambio incompatible de shape usa otro nombre y deja el viejo intacto.
const queueFile = "pending_movements_v1.json"

// Queue cola FIFO durable de movimientos pendientes, persistida como un único
// archivo JSON bajo el directorio de estado. Toda mutación reescribe el
// archivo completo; la lectura es tolerante a archivo ausente o corrupto.
type Queue struct {
	mu       sync.Mutex
	path     string
	onChange func(pending int)
}

// NewQueue construye la cola sobre el directorio de estado dado.
func NewQueue(stateDir string) *Queue {
	return &Queue{path: filepath.Join(stateDir, queueFile)}
}

// OnChange registra el hook que se dispara tras cada mutación persistida,
// con el número de pendientes. Es el indicador de la UI (badge "N pendientes").
func (q *Queue) OnChange(fn func(pending int)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.onChange = fn
}

// Read devuelve los registros pendientes en orden de captura. Archivo ausente,
// ilegible o corrupto cuenta como cola vacía; nunca bloquea la captura de
// movimientos nuevos.
func (q *Queue) Read() []MovementRecord {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.read()
}

func (q *Queue) read() []MovementRecord {
	raw, err := os.ReadFile(q.path)
	if err != nil {
		return nil
	}
	var records []MovementRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}
	return records
}

// Append agrega un registro al final de la cola y persiste. Devuelve el número
// de pendientes tras la operación.
func (q *Queue) Append(rec MovementRecord) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	records := append(q.read(), rec)
	if err := q.write(records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Clear vacía la cola tras una sincronización completa.
func (q *Queue) Clear() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.write(nil)
}

// Len devuelve el número de registros pendientes.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.read())
}

func (q *Queue) write(records []MovementRecord) error {
	if records == nil {
		records = []MovementRecord{}
	}
	if err := os.MkdirAll(filepath.Dir(q.path), 0o755); err != nil {
		return fmt.Errorf("pwa: crear directorio de estado: %w", err)
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("pwa: serializar cola: %w", err)
	}
	if err := os.WriteFile(q.path, raw, 0o644); err != nil {
		return fmt.Errorf("pwa: escribir cola: %w", err)
	}
	if q.onChange != nil {
		q.onChange(len(records))
	}
	return nil
}
