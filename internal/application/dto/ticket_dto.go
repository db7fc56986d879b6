package dto

import "time"

// CreateTicketRequest entrada para levantar un ticket.
type CreateTicketRequest struct {
	Subject     string `json:"subject" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTicketRequest entrada para actualizar un ticket.
type UpdateTicketRequest struct {
	Subject      *string `json:"subject" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	Status       *string `json:"status" validate:"omitempty,oneof=open pending resolved closed"`
	Priority     *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	AssignedToID *string `json:"assigned_to_id" validate:"omitempty,uuid"`
}

// StatusOnly indica si el update toca únicamente el campo Status.
func (r UpdateTicketRequest) StatusOnly() bool {
	return r.Status != nil && r.Subject == nil && r.Description == nil &&
		r.Priority == nil && r.AssignedToID == nil
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID           string    `json:"id"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	RaisedByID   string    `json:"raised_by_id"`
	AssignedToID string    `json:"assigned_to_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TicketListResponse listado paginado de tickets.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
