package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FollowUp es un seguimiento comercial sobre una empresa, con valor estimado
// del negocio. Hereda el estado de finalización de la empresa.
type FollowUp struct {
	ID        string
	CompanyID string
	Notes     string
	DealValue decimal.Decimal
	DueDate   *time.Time
	DoneAt    *time.Time
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
