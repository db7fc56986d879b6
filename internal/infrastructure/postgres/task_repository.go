package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

const taskColumns = `id, title, description, status, company_id, assigned_to_id, assigned_by_id, due_date, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CompanyID,
		&t.AssignedToID, &t.AssignedByID, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(ctx context.Context, task *entity.Task) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.CompanyID,
		task.AssignedToID, task.AssignedByID, task.DueDate, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	t, err := scanTask(r.pool.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// Update actualiza una tarea existente.
func (r *TaskRepo) Update(ctx context.Context, task *entity.Task) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		UPDATE tasks SET title = $2, description = $3, status = $4,
			assigned_to_id = $5, due_date = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.Status,
		task.AssignedToID, task.DueDate, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// List devuelve tareas con paginación.
func (r *TaskRepo) List(ctx context.Context, limit, offset int) ([]*entity.Task, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListByAssignee devuelve las tareas asignadas a un usuario.
func (r *TaskRepo) ListByAssignee(ctx context.Context, userID string, limit, offset int) ([]*entity.Task, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE assigned_to_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks by assignee: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func collectTasks(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]*entity.Task, error) {
	var list []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	if _, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
