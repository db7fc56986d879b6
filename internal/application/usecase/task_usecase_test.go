package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
)

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return errors.New("tarea inexistente")
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) List(_ context.Context, _, _ int) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeTaskRepo) ListByAssignee(_ context.Context, userID string, _, _ int) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.AssignedToID == userID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRoles(_ context.Context, roles []string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func setupTaskUseCase(t *testing.T) (*TaskUseCase, *fakeTaskRepo, *fakeUserRepo) {
	t.Helper()
	tasks := newFakeTaskRepo()
	users := &fakeUserRepo{users: map[string]*entity.User{
		"u-manager":   {ID: "u-manager", Role: rbac.RoleManager},
		"u-collector": {ID: "u-collector", Role: rbac.RoleDataCollector},
		"u-admin":     {ID: "u-admin", Role: rbac.RoleAdmin},
	}}
	return NewTaskUseCase(tasks, users), tasks, users
}

func TestTaskCreate_ManagerAsignaACollector(t *testing.T) {
	uc, _, _ := setupTaskUseCase(t)

	out, err := uc.Create(context.Background(), "u-manager", rbac.RoleManager, dto.CreateTaskRequest{
		Title:        "Llamar al cliente",
		AssignedToID: "u-collector",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusOpen, out.Status)
	assert.Equal(t, "u-collector", out.AssignedToID)
	assert.Equal(t, "u-manager", out.AssignedByID)
}

func TestTaskCreate_CollectorNoPuedeAsignar(t *testing.T) {
	uc, _, _ := setupTaskUseCase(t)

	_, err := uc.Create(context.Background(), "u-collector", rbac.RoleDataCollector, dto.CreateTaskRequest{
		Title:        "Tarea",
		AssignedToID: "u-manager",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskCreate_ManagerNoAsignaHaciaArriba(t *testing.T) {
	uc, _, _ := setupTaskUseCase(t)

	_, err := uc.Create(context.Background(), "u-manager", rbac.RoleManager, dto.CreateTaskRequest{
		Title:        "Tarea",
		AssignedToID: "u-admin",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskUpdate_CollectorSoloStatusDeSuTarea(t *testing.T) {
	uc, tasks, _ := setupTaskUseCase(t)
	tasks.tasks["t1"] = &entity.Task{
		ID: "t1", Title: "Capturar datos", Status: entity.TaskStatusOpen,
		AssignedToID: "u-collector", AssignedByID: "u-manager",
	}

	status := entity.TaskStatusDone
	out, err := uc.Update(context.Background(), "t1", "u-collector", rbac.RoleDataCollector,
		dto.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, out.Status)
}

func TestTaskUpdate_CollectorNoTocaOtrosCampos(t *testing.T) {
	uc, tasks, _ := setupTaskUseCase(t)
	tasks.tasks["t1"] = &entity.Task{
		ID: "t1", Title: "Capturar datos", Status: entity.TaskStatusOpen,
		AssignedToID: "u-collector", AssignedByID: "u-manager",
	}

	status := entity.TaskStatusDone
	title := "Otro título"
	_, err := uc.Update(context.Background(), "t1", "u-collector", rbac.RoleDataCollector,
		dto.UpdateTaskRequest{Status: &status, Title: &title})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskUpdate_CollectorNoTocaTareaAjena(t *testing.T) {
	uc, tasks, _ := setupTaskUseCase(t)
	tasks.tasks["t1"] = &entity.Task{
		ID: "t1", Status: entity.TaskStatusOpen,
		AssignedToID: "u-otro", AssignedByID: "u-manager",
	}

	status := entity.TaskStatusDone
	_, err := uc.Update(context.Background(), "t1", "u-collector", rbac.RoleDataCollector,
		dto.UpdateTaskRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskUpdate_ManagerTocaCualquierCampo(t *testing.T) {
	uc, tasks, _ := setupTaskUseCase(t)
	due := time.Now().Add(48 * time.Hour)
	tasks.tasks["t1"] = &entity.Task{
		ID: "t1", Title: "Original", Status: entity.TaskStatusOpen,
		AssignedToID: "u-collector", AssignedByID: "u-manager",
	}

	title := "Retrabajado"
	out, err := uc.Update(context.Background(), "t1", "u-manager", rbac.RoleManager,
		dto.UpdateTaskRequest{Title: &title, DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, "Retrabajado", out.Title)
	require.NotNil(t, out.DueDate)
}

func TestTaskUpdate_NoExisteDevuelveNotFound(t *testing.T) {
	uc, _, _ := setupTaskUseCase(t)

	status := entity.TaskStatusDone
	_, err := uc.Update(context.Background(), "nope", "u-manager", rbac.RoleManager,
		dto.UpdateTaskRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskListMine_SoloTareasDelActor(t *testing.T) {
	uc, tasks, _ := setupTaskUseCase(t)
	tasks.tasks["t1"] = &entity.Task{ID: "t1", AssignedToID: "u-collector"}
	tasks.tasks["t2"] = &entity.Task{ID: "t2", AssignedToID: "u-otro"}

	out, err := uc.ListMine(context.Background(), "u-collector", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "t1", out.Items[0].ID)
}
