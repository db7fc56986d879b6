package dto

import "time"

// CreateCustomFieldRequest entrada para definir un campo personalizado.
type CreateCustomFieldRequest struct {
	EntityType string `json:"entity_type" validate:"required,oneof=company contact task ticket"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	FieldType  string `json:"field_type" validate:"required,oneof=text number date boolean"`
	Required   bool   `json:"required"`
}

// UpdateCustomFieldRequest entrada para actualizar una definición.
type UpdateCustomFieldRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	FieldType *string `json:"field_type" validate:"omitempty,oneof=text number date boolean"`
	Required  *bool   `json:"required"`
}

// CustomFieldResponse salida de una definición de campo personalizado.
type CustomFieldResponse struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	Name       string    `json:"name"`
	FieldType  string    `json:"field_type"`
	Required   bool      `json:"required"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
