package entity

import "time"

// Estados de una tarea.
const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
	TaskStatusCancelled  = "cancelled"
)

// Task es trabajo asignado a un usuario. Los roles no-asignadores
// (data_collector, converter) solo pueden actualizar el estado de tareas
// asignadas a ellos mismos; los asignadores pueden actualizar cualquier campo.
type Task struct {
	ID           string
	Title        string
	Description  string
	Status       string // open, in_progress, done, cancelled
	CompanyID    string // opcional: tarea ligada a una empresa
	AssignedToID string
	AssignedByID string
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
