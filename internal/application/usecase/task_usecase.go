package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// TaskUseCase reglas de negocio para tareas. La asignación respeta la
// jerarquía de roles: nadie asigna hacia arriba ni a sí mismo.
type TaskUseCase struct {
	repo  repository.TaskRepository
	users repository.UserRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, users repository.UserRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, users: users}
}

// Create crea una tarea asignada a un usuario. Exige canAssignTasks en el
// actor y que el rol del destinatario esté dentro de su jerarquía.
func (uc *TaskUseCase) Create(ctx context.Context, actorID, actorRole string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if !rbac.Has(actorRole, rbac.PermCanAssignTasks) {
		return nil, domain.ErrForbidden
	}
	assignee, err := uc.users.GetByID(ctx, in.AssignedToID)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, domain.ErrUserNotFound
	}
	if !rbac.CanAssignTo(actorRole, assignee.Role) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	task := &entity.Task{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Description:  in.Description,
		Status:       entity.TaskStatusOpen,
		CompanyID:    in.CompanyID,
		AssignedToID: in.AssignedToID,
		AssignedByID: actorID,
		DueDate:      in.DueDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetByID obtiene una tarea por ID.
func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	return toTaskResponse(task), nil
}

// List lista todas las tareas con paginación.
func (uc *TaskUseCase) List(ctx context.Context, limit, offset int) (*dto.TaskListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTaskList(list, limit, offset), nil
}

// ListMine lista las tareas asignadas al actor.
func (uc *TaskUseCase) ListMine(ctx context.Context, actorID string, limit, offset int) (*dto.TaskListResponse, error) {
	list, err := uc.repo.ListByAssignee(ctx, actorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTaskList(list, limit, offset), nil
}

// Update actualiza una tarea. Con canUpdateAllTasks el actor puede tocar
// cualquier campo de cualquier tarea; con solo canUpdateOwnTasks el update es
// válido únicamente si toca solo Status y la tarea le está asignada.
func (uc *TaskUseCase) Update(ctx context.Context, id, actorID, actorRole string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !rbac.Has(actorRole, rbac.PermCanUpdateAllTasks) {
		if !rbac.Has(actorRole, rbac.PermCanUpdateOwnTasks) {
			return nil, domain.ErrForbidden
		}
		if task.AssignedToID != actorID || !in.StatusOnly() {
			return nil, domain.ErrForbidden
		}
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.AssignedToID != nil {
		assignee, err := uc.users.GetByID(ctx, *in.AssignedToID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, domain.ErrUserNotFound
		}
		if !rbac.CanAssignTo(actorRole, assignee.Role) {
			return nil, domain.ErrForbidden
		}
		task.AssignedToID = *in.AssignedToID
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete elimina una tarea por ID.
func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toTaskList(list []*entity.Task, limit, offset int) *dto.TaskListResponse {
	items := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTaskResponse(t))
	}
	return &dto.TaskListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		CompanyID:    t.CompanyID,
		AssignedToID: t.AssignedToID,
		AssignedByID: t.AssignedByID,
		DueDate:      t.DueDate,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
