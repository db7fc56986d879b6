package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name                    string `json:"name" validate:"required,min=1,max=200"`
	Industry                string `json:"industry" validate:"omitempty,max=100"`
	Region                  string `json:"region" validate:"omitempty,max=100"`
	AnnualRevenue           string `json:"annual_revenue" validate:"omitempty,numeric"`
	AssignedDataCollectorID string `json:"assigned_data_collector_id" validate:"omitempty,uuid"`
	AssignedConverterID     string `json:"assigned_converter_id" validate:"omitempty,uuid"`
	IsPublic                bool   `json:"is_public"`
}

// UpdateCompanyRequest entrada para actualizar una empresa.
type UpdateCompanyRequest struct {
	Name                    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Industry                *string `json:"industry" validate:"omitempty,max=100"`
	Region                  *string `json:"region" validate:"omitempty,max=100"`
	AnnualRevenue           *string `json:"annual_revenue" validate:"omitempty,numeric"`
	AssignedDataCollectorID *string `json:"assigned_data_collector_id" validate:"omitempty,uuid"`
	AssignedConverterID     *string `json:"assigned_converter_id" validate:"omitempty,uuid"`
	IsPublic                *bool   `json:"is_public"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                      string     `json:"id"`
	Name                    string     `json:"name"`
	Industry                string     `json:"industry,omitempty"`
	Region                  string     `json:"region,omitempty"`
	AnnualRevenue           string     `json:"annual_revenue"`
	AssignedDataCollectorID string     `json:"assigned_data_collector_id,omitempty"`
	AssignedConverterID     string     `json:"assigned_converter_id,omitempty"`
	FinalizationStatus      string     `json:"finalization_status"`
	FinalizedByID           string     `json:"finalized_by_id,omitempty"`
	FinalizedAt             *time.Time `json:"finalized_at,omitempty"`
	IsPublic                bool       `json:"is_public"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
