package entity

import "time"

// CustomFieldDef define un campo personalizado sobre una entidad del CRM.
// Administrarlos exige canManageCustomFields.
type CustomFieldDef struct {
	ID         string
	EntityType string // company, contact, task, ticket
	Name       string
	FieldType  string // text, number, date, boolean
	Required   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
