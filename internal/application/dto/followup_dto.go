package dto

import "time"

// CreateFollowUpRequest entrada para crear un seguimiento comercial.
type CreateFollowUpRequest struct {
	CompanyID string     `json:"company_id" validate:"required,uuid"`
	Notes     string     `json:"notes" validate:"required,min=1,max=2000"`
	DealValue string     `json:"deal_value" validate:"omitempty,numeric"`
	DueDate   *time.Time `json:"due_date"`
}

// UpdateFollowUpRequest entrada para actualizar un seguimiento.
type UpdateFollowUpRequest struct {
	Notes     *string    `json:"notes" validate:"omitempty,min=1,max=2000"`
	DealValue *string    `json:"deal_value" validate:"omitempty,numeric"`
	DueDate   *time.Time `json:"due_date"`
	Done      *bool      `json:"done"`
}

// FollowUpResponse salida de un seguimiento.
type FollowUpResponse struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Notes     string     `json:"notes"`
	DealValue string     `json:"deal_value"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	DoneAt    *time.Time `json:"done_at,omitempty"`
	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FollowUpListResponse listado paginado de seguimientos.
type FollowUpListResponse struct {
	Items []FollowUpResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
