package entity

import "time"

// Estados de un ticket de soporte.
const (
	TicketStatusOpen     = "open"
	TicketStatusPending  = "pending"
	TicketStatusResolved = "resolved"
	TicketStatusClosed   = "closed"
)

// Ticket es una solicitud interna levantada por un usuario. Crear tickets
// requiere el flag por-usuario CanRaiseTickets (viaja en el JWT).
type Ticket struct {
	ID          string
	Subject     string
	Description string
	Status      string // open, pending, resolved, closed
	Priority    string // low, medium, high
	RaisedByID  string
	AssignedToID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
