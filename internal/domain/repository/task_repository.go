package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	List(ctx context.Context, limit, offset int) ([]*entity.Task, error)
	ListByAssignee(ctx context.Context, userID string, limit, offset int) ([]*entity.Task, error)
	Delete(ctx context.Context, id string) error
}
