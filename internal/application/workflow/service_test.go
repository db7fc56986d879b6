package workflow_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/workflow"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
)

// fakeCompanyRepo implementación en memoria con update condicional, igual que
// la versión PostgreSQL: solo transiciona si el estado actual coincide.
type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) List(_ context.Context, status string, _, _ int) ([]*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Company
	for _, c := range r.companies {
		if status == "" || c.FinalizationStatus == status {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.companies, id)
	return nil
}

func (r *fakeCompanyRepo) SetFinalization(_ context.Context, id, fromStatus, toStatus, byID string, at *time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok || c.FinalizationStatus != fromStatus {
		return false, nil
	}
	c.FinalizationStatus = toStatus
	c.FinalizedByID = byID
	c.FinalizedAt = at
	return true, nil
}

func pendingCompany(id string) *entity.Company {
	return &entity.Company{ID: id, Name: "ACME " + id, FinalizationStatus: entity.FinalizationPending}
}

var (
	actorHead      = workflow.Actor{ID: "u-head", Role: rbac.RoleHead}
	actorSubHead   = workflow.Actor{ID: "u-subhead", Role: rbac.RoleSubHead}
	actorCollector = workflow.Actor{ID: "u-dc", Role: rbac.RoleDataCollector}
)

// Caso 1: finalize feliz — registra actor y timestamp.
func TestFinalize_RegistraActorYFecha(t *testing.T) {
	repo := newFakeCompanyRepo(pendingCompany("c1"))
	svc := workflow.NewService(repo, 50)

	require.NoError(t, svc.Finalize(context.Background(), "c1", actorHead))

	c, _ := repo.GetByID(context.Background(), "c1")
	assert.Equal(t, entity.FinalizationFinalized, c.FinalizationStatus)
	assert.Equal(t, "u-head", c.FinalizedByID)
	require.NotNil(t, c.FinalizedAt)
}

// Caso 2: sin canFinalize → ErrForbidden, sin escritura alguna.
func TestFinalize_SinPermisoDenegado(t *testing.T) {
	repo := newFakeCompanyRepo(pendingCompany("c1"))
	svc := workflow.NewService(repo, 50)

	err := svc.Finalize(context.Background(), "c1", actorCollector)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	c, _ := repo.GetByID(context.Background(), "c1")
	assert.Equal(t, entity.FinalizationPending, c.FinalizationStatus, "no debe haber escritura parcial")
}

// Caso 3: empresa inexistente → ErrNotFound; ya finalizada → ErrAlreadyFinalized.
func TestFinalize_NotFoundYConflicto(t *testing.T) {
	repo := newFakeCompanyRepo(pendingCompany("c1"))
	svc := workflow.NewService(repo, 50)

	assert.ErrorIs(t, svc.Finalize(context.Background(), "no-existe", actorHead), domain.ErrNotFound)

	require.NoError(t, svc.Finalize(context.Background(), "c1", actorHead))
	assert.ErrorIs(t, svc.Finalize(context.Background(), "c1", actorHead), domain.ErrAlreadyFinalized)
}

// Caso 4: finalize → unfinalize → finalize deja como finalizador al último
// actor (last-writer-wins, no el finalizador original).
func TestFinalize_RoundTripUltimoActorGana(t *testing.T) {
	repo := newFakeCompanyRepo(pendingCompany("c1"))
	svc := workflow.NewService(repo, 50)
	ctx := context.Background()

	require.NoError(t, svc.Finalize(ctx, "c1", actorHead))
	require.NoError(t, svc.Unfinalize(ctx, "c1", actorHead))

	c, _ := repo.GetByID(ctx, "c1")
	assert.Equal(t, entity.FinalizationPending, c.FinalizationStatus)
	assert.Empty(t, c.FinalizedByID, "unfinalize debe limpiar finalized_by")
	assert.Nil(t, c.FinalizedAt, "unfinalize debe limpiar finalized_at")

	require.NoError(t, svc.Finalize(ctx, "c1", actorSubHead))
	c, _ = repo.GetByID(ctx, "c1")
	assert.Equal(t, entity.FinalizationFinalized, c.FinalizationStatus)
	assert.Equal(t, "u-subhead", c.FinalizedByID)
}

// Caso 5: unfinalize sobre una empresa pendiente → ErrNotFinalized.
func TestUnfinalize_SobrePendienteFalla(t *testing.T) {
	repo := newFakeCompanyRepo(pendingCompany("c1"))
	svc := workflow.NewService(repo, 50)

	assert.ErrorIs(t, svc.Unfinalize(context.Background(), "c1", actorHead), domain.ErrNotFinalized)
}

// Caso 6: bulk approve con un id ya finalizado reporta solo los que
// transicionaron (A y C → 2), sin fallar el lote.
func TestBulkApprove_FalloIndividualNoAbortaElLote(t *testing.T) {
	repo := newFakeCompanyRepo(pendingCompany("a"), pendingCompany("b"), pendingCompany("c"))
	svc := workflow.NewService(repo, 50)
	ctx := context.Background()

	require.NoError(t, svc.Finalize(ctx, "b", actorHead)) // B ya finalizada

	updated, err := svc.BulkApprove(ctx, []string{"a", "b", "c"}, actorHead)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
}

// Caso 7: bulk approve respeta el límite de lote.
func TestBulkApprove_LimiteDeLote(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := workflow.NewService(repo, 2)

	_, err := svc.BulkApprove(context.Background(), []string{"a", "b", "c"}, actorHead)
	assert.ErrorIs(t, err, domain.ErrBulkLimitExceeded)
}

// Caso 8: bulk reject no toca el estado de finalización y solo cuenta
// pendientes existentes.
func TestBulkReject_NoCambiaEstado(t *testing.T) {
	repo := newFakeCompanyRepo(pendingCompany("a"), pendingCompany("b"))
	svc := workflow.NewService(repo, 50)
	ctx := context.Background()

	require.NoError(t, svc.Finalize(ctx, "b", actorHead))

	updated, err := svc.BulkReject(ctx, []string{"a", "b", "no-existe"}, actorHead)
	require.NoError(t, err)
	assert.Equal(t, 1, updated, "solo la pendiente existente cuenta")

	a, _ := repo.GetByID(ctx, "a")
	b, _ := repo.GetByID(ctx, "b")
	assert.Equal(t, entity.FinalizationPending, a.FinalizationStatus)
	assert.Equal(t, entity.FinalizationFinalized, b.FinalizationStatus)
}

// Caso 9: importación con un registro inválido → count parcial y error con índice.
func TestBulkImport_ErroresParcialesPorIndice(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := workflow.NewService(repo, 50)

	records := []dto.CompanyImportRecord{
		{Name: "Alfa SAS", Region: "norte"},
		{Name: ""}, // inválido: name requerido
		{Name: "Gamma Ltda", AnnualRevenue: "1250000.50"},
	}
	result, err := svc.BulkImport(context.Background(), records, actorHead)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.NotEmpty(t, result.Errors[0].Reason)
}

// Caso 10: importación sin canCreate → ErrForbidden.
func TestBulkImport_SinPermisoDenegado(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := workflow.NewService(repo, 50)

	_, err := svc.BulkImport(context.Background(),
		[]dto.CompanyImportRecord{{Name: "Alfa"}}, workflow.Actor{ID: "x", Role: "rol-fantasma"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
