package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/audit"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	apphttp "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/jwt"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "crm-pro-test"
	testExpMin    = 60
)

// tokenFor genera un JWT de pruebas con el rol indicado.
func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := jwt.Generate(testJWTSecret, testUserID, role, "", false, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición con el header Authorization dado.
func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func okHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

// fakeStates implementa el lookup de guardia en memoria.
type fakeStates struct {
	states map[string]*repository.EntityState
}

func (f *fakeStates) Lookup(_ context.Context, _, id string) (*repository.EntityState, error) {
	if s, ok := f.states[id]; ok {
		return s, nil
	}
	return &repository.EntityState{}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), okHandler)

	resp := doRequest(t, app, http.MethodGet, "/protected", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), okHandler)

	resp := doRequest(t, app, http.MethodGet, "/protected", "Bearer token.invalido.aqui", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetUserRole(c),
		})
	})

	resp := doRequest(t, app, http.MethodGet, "/me", tokenFor(t, rbac.RoleManager), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, rbac.RoleManager, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole / RequirePermission / WritePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := fiber.New()
	app.Get("/admin-only", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireRole(rbac.RoleAdmin), okHandler)

	resp := doRequest(t, app, http.MethodGet, "/admin-only", tokenFor(t, rbac.RoleAdmin), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_CollectorBloqueadoEnRutaAdmin(t *testing.T) {
	app := fiber.New()
	app.Get("/admin-only", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireRole(rbac.RoleAdmin), okHandler)

	resp := doRequest(t, app, http.MethodGet, "/admin-only", tokenFor(t, rbac.RoleDataCollector), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INSUFFICIENT_ROLE")
}

func TestRequirePermission_ManagerSinFinalize_Retorna403(t *testing.T) {
	app := fiber.New()
	app.Get("/gated", apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(rbac.PermCanFinalize), okHandler)

	resp := doRequest(t, app, http.MethodGet, "/gated", tokenFor(t, rbac.RoleManager), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"manager no tiene canFinalize y debe ser bloqueado")
}

func TestWritePermission_GetPasaSiempre(t *testing.T) {
	app := fiber.New()
	app.Get("/things", apphttp.AuthMiddleware(testJWTSecret), apphttp.WritePermission(), okHandler)

	resp := doRequest(t, app, http.MethodGet, "/things", tokenFor(t, rbac.RoleDataCollector), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWritePermission_PostDeCollectorPasa(t *testing.T) {
	app := fiber.New()
	app.Post("/things", apphttp.AuthMiddleware(testJWTSecret), apphttp.WritePermission(), okHandler)

	resp := doRequest(t, app, http.MethodPost, "/things", tokenFor(t, rbac.RoleDataCollector),
		strings.NewReader(`{}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "data_collector tiene canCreate")
}

func TestWritePermission_DeleteDeCollectorBloqueado(t *testing.T) {
	app := fiber.New()
	app.Delete("/things/:id", apphttp.AuthMiddleware(testJWTSecret), apphttp.WritePermission(), okHandler)

	resp := doRequest(t, app, http.MethodDelete, "/things/x", tokenFor(t, rbac.RoleDataCollector), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "data_collector no tiene canDelete")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests EntityGuard
// ──────────────────────────────────────────────────────────────────────────────

func guardApp(states *fakeStates, cfg apphttp.GuardConfig) *fiber.App {
	app := fiber.New()
	app.Put("/things/:id", apphttp.AuthMiddleware(testJWTSecret),
		apphttp.EntityGuard(states, cfg), okHandler)
	return app
}

func TestEntityGuard_NoExiste_Retorna404(t *testing.T) {
	app := guardApp(&fakeStates{states: map[string]*repository.EntityState{}},
		apphttp.GuardConfig{EntityType: "company"})

	resp := doRequest(t, app, http.MethodPut, "/things/nope", tokenFor(t, rbac.RoleAdmin),
		strings.NewReader(`{}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEntityGuard_FinalizadaSinPermiso_Retorna403(t *testing.T) {
	states := &fakeStates{states: map[string]*repository.EntityState{
		"c1": {Exists: true, Finalized: true},
	}}
	app := guardApp(states, apphttp.GuardConfig{EntityType: "company", AllowManagers: true})

	resp := doRequest(t, app, http.MethodPut, "/things/c1", tokenFor(t, rbac.RoleManager),
		strings.NewReader(`{}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ENTITY_FINALIZED",
		"una entidad finalizada solo se muta con canEditFinalized")
}

func TestEntityGuard_FinalizadaConCanEditFinalized_Pasa(t *testing.T) {
	states := &fakeStates{states: map[string]*repository.EntityState{
		"c1": {Exists: true, Finalized: true},
	}}
	app := guardApp(states, apphttp.GuardConfig{EntityType: "company", AllowManagers: true})

	resp := doRequest(t, app, http.MethodPut, "/things/c1", tokenFor(t, rbac.RoleAdmin),
		strings.NewReader(`{}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEntityGuard_CollectorNoDueno_Retorna403(t *testing.T) {
	states := &fakeStates{states: map[string]*repository.EntityState{
		"c1": {Exists: true, OwnerIDs: []string{"otro-usuario"}},
	}}
	app := guardApp(states, apphttp.GuardConfig{EntityType: "company"})

	resp := doRequest(t, app, http.MethodPut, "/things/c1", tokenFor(t, rbac.RoleDataCollector),
		strings.NewReader(`{}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEntityGuard_CollectorDueno_Pasa(t *testing.T) {
	states := &fakeStates{states: map[string]*repository.EntityState{
		"c1": {Exists: true, OwnerIDs: []string{testUserID}},
	}}
	app := guardApp(states, apphttp.GuardConfig{EntityType: "company"})

	resp := doRequest(t, app, http.MethodPut, "/things/c1", tokenFor(t, rbac.RoleDataCollector),
		strings.NewReader(`{}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEntityGuard_ManagerPasaConAllowManagers(t *testing.T) {
	states := &fakeStates{states: map[string]*repository.EntityState{
		"c1": {Exists: true, OwnerIDs: []string{"otro-usuario"}},
	}}
	app := guardApp(states, apphttp.GuardConfig{EntityType: "company", AllowManagers: true})

	resp := doRequest(t, app, http.MethodPut, "/things/c1", tokenFor(t, rbac.RoleManager),
		strings.NewReader(`{}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests BulkLimit
// ──────────────────────────────────────────────────────────────────────────────

func bulkApp(maxItems int) *fiber.App {
	app := fiber.New()
	app.Post("/bulk", apphttp.AuthMiddleware(testJWTSecret), apphttp.BulkLimit(maxItems), okHandler)
	return app
}

func TestBulkLimit_ExcedeMaximo_Retorna400(t *testing.T) {
	app := bulkApp(2)
	resp := doRequest(t, app, http.MethodPost, "/bulk", tokenFor(t, rbac.RoleAdmin),
		strings.NewReader(`{"ids":["a","b","c"]}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TOO_MANY_ITEMS")
}

func TestBulkLimit_DentroDelLimite_Pasa(t *testing.T) {
	app := bulkApp(2)
	resp := doRequest(t, app, http.MethodPost, "/bulk", tokenFor(t, rbac.RoleAdmin),
		strings.NewReader(`{"ids":["a","b"]}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBulkLimit_BodyNoJSON_Pasa(t *testing.T) {
	// Un body ilegible lo rechaza la validación del handler, no este guard.
	app := bulkApp(2)
	resp := doRequest(t, app, http.MethodPost, "/bulk", tokenFor(t, rbac.RoleAdmin),
		strings.NewReader(`no-es-json`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Audited
// ──────────────────────────────────────────────────────────────────────────────

type captureAuditRepo struct {
	mu     sync.Mutex
	logs   []*entity.AuditLog
	events []*entity.SecurityEvent
}

func (r *captureAuditRepo) CreateAuditLog(_ context.Context, l *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, l)
	return nil
}

func (r *captureAuditRepo) CreateSecurityEvent(_ context.Context, e *entity.SecurityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *captureAuditRepo) ListAuditLogs(context.Context, int, int) ([]*entity.AuditLog, error) {
	return nil, nil
}

func testRecorder(repo *captureAuditRepo) *audit.Recorder {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return audit.NewRecorder(repo, log, 0)
}

func TestAudited_UnaEntradaPorMutacion(t *testing.T) {
	repo := &captureAuditRepo{}
	recorder := testRecorder(repo)

	app := fiber.New()
	app.Put("/things/:id", apphttp.AuthMiddleware(testJWTSecret),
		apphttp.Audited(recorder, "company"), okHandler)

	resp := doRequest(t, app, http.MethodPut, "/things/c1", tokenFor(t, rbac.RoleAdmin),
		strings.NewReader(`{"name":"Acme"}`))
	resp.Body.Close()
	recorder.Flush()

	require.Len(t, repo.logs, 1, "exactamente una entrada por mutación")
	entry := repo.logs[0]
	assert.Equal(t, entity.ActionUpdate, entry.Action)
	assert.Equal(t, "company", entry.EntityType)
	assert.Equal(t, "c1", entry.EntityID)
	assert.Equal(t, testUserID, entry.UserID)
	assert.Contains(t, string(entry.Changes), `"success":true`)
}

func TestAudited_HandlerFalla_RegistraIgual(t *testing.T) {
	repo := &captureAuditRepo{}
	recorder := testRecorder(repo)

	app := fiber.New()
	app.Delete("/things/:id", apphttp.AuthMiddleware(testJWTSecret),
		apphttp.Audited(recorder, "company"), func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false})
		})

	resp := doRequest(t, app, http.MethodDelete, "/things/c1", tokenFor(t, rbac.RoleAdmin), nil)
	resp.Body.Close()
	recorder.Flush()

	require.Len(t, repo.logs, 1, "las mutaciones fallidas también se auditan")
	assert.Contains(t, string(repo.logs[0].Changes), `"success":false`)
}

// gatedAuditRepo retiene la primera escritura hasta que se cierre release,
// para que otro request alcance a reciclar el contexto fiber mientras la
// entrada sigue pendiente.
type gatedAuditRepo struct {
	captureAuditRepo
	release chan struct{}
	first   sync.Once
}

func (r *gatedAuditRepo) CreateAuditLog(ctx context.Context, l *entity.AuditLog) error {
	blocked := false
	r.first.Do(func() { blocked = true })
	if blocked {
		<-r.release
	}
	return r.captureAuditRepo.CreateAuditLog(ctx, l)
}

func TestAudited_EntradaPendienteNoSeContaminaConOtroRequest(t *testing.T) {
	repo := &gatedAuditRepo{release: make(chan struct{})}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	recorder := audit.NewRecorder(repo, log, 0)

	app := fiber.New()
	app.Put("/things/:id", apphttp.AuthMiddleware(testJWTSecret),
		apphttp.Audited(recorder, "company"), okHandler)

	idA := strings.Repeat("A", 24)
	idB := strings.Repeat("B", 24)

	// La escritura del primer request queda retenida mientras el segundo
	// request reutiliza los buffers del contexto.
	resp := doRequest(t, app, http.MethodPut, "/things/"+idA, tokenFor(t, rbac.RoleAdmin),
		strings.NewReader(`{"name":"Acme"}`))
	resp.Body.Close()
	resp = doRequest(t, app, http.MethodPut, "/things/"+idB, tokenFor(t, rbac.RoleAdmin),
		strings.NewReader(`{"name":"Beta"}`))
	resp.Body.Close()

	close(repo.release)
	recorder.Flush()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Len(t, repo.logs, 2)
	ids := map[string]bool{}
	urls := map[string]bool{}
	for _, l := range repo.logs {
		ids[l.EntityID] = true
		var changes audit.Changes
		require.NoError(t, json.Unmarshal(l.Changes, &changes))
		urls[changes.URL] = true
	}
	assert.True(t, ids[idA], "la entrada retenida debe conservar el id de su propio request")
	assert.True(t, ids[idB])
	assert.True(t, urls["/things/"+idA], "la URL auditada no debe apuntar al request siguiente")
	assert.True(t, urls["/things/"+idB])
}

func TestAudited_OverrideDeAccion(t *testing.T) {
	repo := &captureAuditRepo{}
	recorder := testRecorder(repo)

	app := fiber.New()
	app.Post("/things/:id/finalize", apphttp.AuthMiddleware(testJWTSecret),
		apphttp.Audited(recorder, "company"), func(c *fiber.Ctx) error {
			c.Locals(apphttp.LocalAuditAction, entity.ActionFinalize)
			return okHandler(c)
		})

	resp := doRequest(t, app, http.MethodPost, "/things/c1/finalize", tokenFor(t, rbac.RoleAdmin), nil)
	resp.Body.Close()
	recorder.Flush()

	require.Len(t, repo.logs, 1)
	assert.Equal(t, entity.ActionFinalize, repo.logs[0].Action)
}
