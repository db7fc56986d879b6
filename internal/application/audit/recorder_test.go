package audit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/audit"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// fakeAuditRepo acumula escrituras en memoria; failLogs simula una caída del store.
type fakeAuditRepo struct {
	mu       sync.Mutex
	logs     []*entity.AuditLog
	events   []*entity.SecurityEvent
	failLogs bool
}

func (f *fakeAuditRepo) CreateAuditLog(_ context.Context, l *entity.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLogs {
		return errors.New("store caído")
	}
	f.logs = append(f.logs, l)
	return nil
}

func (f *fakeAuditRepo) CreateSecurityEvent(_ context.Context, e *entity.SecurityEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return nil
}

func (f *fakeAuditRepo) ListAuditLogs(context.Context, int, int) ([]*entity.AuditLog, error) {
	return nil, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// Caso 1: clasificación de severidad según acción y entidad.
func TestClassify_Severidades(t *testing.T) {
	assert.Equal(t, entity.SeverityCritical, audit.Classify(entity.ActionDelete, "user"))
	assert.Equal(t, entity.SeverityMedium, audit.Classify(entity.ActionDelete, "task"))
	assert.Equal(t, entity.SeverityMedium, audit.Classify(entity.ActionFinalize, "company"))
	assert.Equal(t, entity.SeverityMedium, audit.Classify(entity.ActionCreate, "user"))
	assert.Equal(t, entity.SeverityLow, audit.Classify(entity.ActionUpdate, "contact"))
	assert.Equal(t, entity.SeverityLow, audit.Classify(entity.ActionRead, "company"))
}

// Caso 2: detección de operaciones sensibles (acción o tipo de entidad).
func TestIsSensitive_Deteccion(t *testing.T) {
	assert.True(t, audit.IsSensitive(entity.ActionDelete, "contact"))
	assert.True(t, audit.IsSensitive(entity.ActionFinalize, "company"))
	assert.True(t, audit.IsSensitive(entity.ActionUpdate, "user"))
	assert.True(t, audit.IsSensitive(entity.ActionRead, "audit_log"))
	assert.False(t, audit.IsSensitive(entity.ActionUpdate, "task"))
	assert.False(t, audit.IsSensitive(entity.ActionCreate, "contact"))
}

// Caso 3: el tipo de evento se sintetiza como AUDIT_{action}_{entityType}.
func TestEventType_Sintesis(t *testing.T) {
	assert.Equal(t, "AUDIT_DELETE_user", audit.EventType(entity.ActionDelete, "user"))
	assert.Equal(t, "AUDIT_FINALIZE_company", audit.EventType(entity.ActionFinalize, "company"))
}

// Caso 4: una mutación sensible escribe entrada de auditoría y evento de seguridad.
func TestRecorder_MutacionSensibleEscribeAmbos(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, testLogger(), time.Second)

	rec.Record(audit.Entry{
		UserID:     "u1",
		Action:     entity.ActionDelete,
		EntityType: "user",
		EntityID:   "u2",
		IPAddress:  "10.0.0.1",
		UserAgent:  "tests",
		Changes:    audit.Changes{Method: "DELETE", URL: "/api/v1/users/u2", Success: true, StatusCode: 200},
	})
	rec.Flush()

	require.Len(t, repo.logs, 1)
	require.Len(t, repo.events, 1)
	assert.Equal(t, "AUDIT_DELETE_user", repo.events[0].EventType)
	assert.Equal(t, entity.SeverityCritical, repo.events[0].Severity)
	assert.NotEmpty(t, repo.logs[0].ID, "la entrada debe llevar ULID")
	assert.JSONEq(t,
		`{"method":"DELETE","url":"/api/v1/users/u2","duration_ms":0,"success":true,"status_code":200}`,
		string(repo.logs[0].Changes))
}

// Caso 5: una mutación no sensible solo escribe la entrada de auditoría.
func TestRecorder_MutacionNormalSoloAuditoria(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, testLogger(), time.Second)

	rec.Record(audit.Entry{
		UserID: "u1", Action: entity.ActionUpdate, EntityType: "task", EntityID: "t1",
		Changes: audit.Changes{Method: "PUT", URL: "/api/v1/tasks/t1", Success: true, StatusCode: 200},
	})
	rec.Flush()

	assert.Len(t, repo.logs, 1)
	assert.Empty(t, repo.events)
}

// Caso 6: un fallo del store de auditoría no se propaga — Record no falla nunca.
func TestRecorder_FalloDelStoreNoSePropaga(t *testing.T) {
	repo := &fakeAuditRepo{failLogs: true}
	rec := audit.NewRecorder(repo, testLogger(), time.Second)

	assert.NotPanics(t, func() {
		rec.Record(audit.Entry{
			UserID: "u1", Action: entity.ActionCreate, EntityType: "contact", EntityID: "c1",
		})
		rec.Flush()
	})
	assert.Empty(t, repo.logs)
}

// Caso 7: cada mutación registrada agrega exactamente una entrada.
func TestRecorder_UnaEntradaPorMutacion(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, testLogger(), time.Second)

	for i := 0; i < 5; i++ {
		rec.Record(audit.Entry{UserID: "u1", Action: entity.ActionCreate, EntityType: "task"})
	}
	rec.Flush()

	assert.Len(t, repo.logs, 5)
}
