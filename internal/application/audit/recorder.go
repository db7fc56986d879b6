package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/internal/metrics"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Changes es el contexto JSON que acompaña cada entrada de auditoría.
type Changes struct {
	Method     string          `json:"method"`
	URL        string          `json:"url"`
	Body       json.RawMessage `json:"body,omitempty"`
	DurationMS int64           `json:"duration_ms"`
	Success    bool            `json:"success"`
	StatusCode int             `json:"status_code"`
}

// Entry describe una mutación con gate a registrar.
type Entry struct {
	UserID     string
	Action     string
	EntityType string
	EntityID   string
	IPAddress  string
	UserAgent  string
	Changes    Changes
}

// Recorder escribe entradas de auditoría y eventos de seguridad en segundo
// plano. Fire-and-forget: un fallo de escritura jamás falla la operación
// primaria; se registra por separado y se continúa.
type Recorder struct {
	repo    repository.AuditRepository
	log     *logger.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewRecorder construye el recorder. El timeout acota cada escritura de log.
func NewRecorder(repo repository.AuditRepository, log *logger.Logger, timeout time.Duration) *Recorder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Recorder{repo: repo, log: log.Component("audit"), timeout: timeout}
}

// Record encola la escritura y retorna de inmediato; la respuesta HTTP nunca
// espera al log. Usa context.Background porque el contexto del request ya
// habrá muerto cuando corra la goroutine.
func (r *Recorder) Record(e Entry) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.write(e)
	}()
}

// Flush espera a que terminen las escrituras pendientes (apagado y tests).
func (r *Recorder) Flush() {
	r.wg.Wait()
}

func (r *Recorder) write(e Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	changes, err := json.Marshal(e.Changes)
	if err != nil {
		changes = []byte("{}")
	}
	now := time.Now()
	logEntry := &entity.AuditLog{
		ID:         ulid.Make().String(),
		UserID:     e.UserID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Changes:    changes,
		IPAddress:  e.IPAddress,
		CreatedAt:  now,
	}
	if err := r.repo.CreateAuditLog(ctx, logEntry); err != nil {
		metrics.AuditWritesTotal.WithLabelValues("error").Inc()
		r.log.Error().Err(err).
			Str("action", e.Action).
			Str("entity_type", e.EntityType).
			Str("entity_id", e.EntityID).
			Msg("no se pudo escribir la entrada de auditoría")
	} else {
		metrics.AuditWritesTotal.WithLabelValues("ok").Inc()
	}

	if !IsSensitive(e.Action, e.EntityType) {
		return
	}
	severity := Classify(e.Action, e.EntityType)
	event := &entity.SecurityEvent{
		ID:        ulid.Make().String(),
		EventType: EventType(e.Action, e.EntityType),
		UserID:    e.UserID,
		IPAddress: e.IPAddress,
		UserAgent: e.UserAgent,
		Details:   changes,
		Severity:  severity,
		CreatedAt: now,
	}
	if err := r.repo.CreateSecurityEvent(ctx, event); err != nil {
		r.log.Error().Err(err).
			Str("event_type", event.EventType).
			Msg("no se pudo escribir el evento de seguridad")
		return
	}
	metrics.SecurityEventsTotal.WithLabelValues(severity).Inc()
}
