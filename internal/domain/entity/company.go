package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de finalización de una Company.
// Pending es el estado inicial; Finalized bloquea ediciones generales y solo
// se revierte con el permiso canFinalize.
const (
	FinalizationPending   = "pending"
	FinalizationFinalized = "finalized"
)

// Company es la entidad finalizable central del CRM. Mientras está Finalized
// solo los actores con canEditFinalized pueden mutarla; el resto queda en
// solo-lectura (o sin acceso, si su rol no tiene canReadFinalized).
type Company struct {
	ID                      string
	Name                    string
	Industry                string
	Region                  string
	AnnualRevenue           decimal.Decimal
	AssignedDataCollectorID string
	AssignedConverterID     string
	FinalizationStatus      string // pending, finalized
	FinalizedByID           string // vacío mientras está pending
	FinalizedAt             *time.Time
	IsPublic                bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsFinalized indica si la empresa está bloqueada para ediciones generales.
func (c *Company) IsFinalized() bool {
	return c.FinalizationStatus == FinalizationFinalized
}
