package entity

import "time"

// Contact es una persona de contacto dentro de una Company. Hereda el estado
// de finalización de su empresa: si la empresa está Finalized, mutar el
// contacto exige canEditFinalized.
type Contact struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Position  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
