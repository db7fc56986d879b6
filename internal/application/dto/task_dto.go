package dto

import "time"

// CreateTaskRequest entrada para crear y asignar una tarea.
type CreateTaskRequest struct {
	Title        string     `json:"title" validate:"required,min=1,max=200"`
	Description  string     `json:"description" validate:"omitempty,max=2000"`
	CompanyID    string     `json:"company_id" validate:"omitempty,uuid"`
	AssignedToID string     `json:"assigned_to_id" validate:"required,uuid"`
	DueDate      *time.Time `json:"due_date"`
}

// UpdateTaskRequest entrada para actualizar una tarea. Los roles
// no-asignadores solo pueden tocar Status de sus propias tareas; el resto de
// campos exige canUpdateAllTasks.
type UpdateTaskRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string    `json:"description" validate:"omitempty,max=2000"`
	Status       *string    `json:"status" validate:"omitempty,oneof=open in_progress done cancelled"`
	AssignedToID *string    `json:"assigned_to_id" validate:"omitempty,uuid"`
	DueDate      *time.Time `json:"due_date"`
}

// StatusOnly indica si el update toca únicamente el campo Status.
func (r UpdateTaskRequest) StatusOnly() bool {
	return r.Status != nil && r.Title == nil && r.Description == nil &&
		r.AssignedToID == nil && r.DueDate == nil
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Status       string     `json:"status"`
	CompanyID    string     `json:"company_id,omitempty"`
	AssignedToID string     `json:"assigned_to_id"`
	AssignedByID string     `json:"assigned_by_id"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TaskListResponse listado paginado de tareas.
type TaskListResponse struct {
	Items []TaskResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
