package dto

// BulkIDsRequest entrada de las acciones masivas sobre la cola de aprobación.
type BulkIDsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// BulkActionResponse cantidad de entidades que efectivamente transicionaron.
type BulkActionResponse struct {
	Updated int `json:"updated"`
}

// CompanyImportRecord un registro de importación masiva; cada uno se valida
// de forma independiente.
type CompanyImportRecord struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Industry      string `json:"industry" validate:"omitempty,max=100"`
	Region        string `json:"region" validate:"omitempty,max=100"`
	AnnualRevenue string `json:"annual_revenue" validate:"omitempty,numeric"`
	IsPublic      bool   `json:"is_public"`
}

// BulkImportRequest lote de registros a importar.
type BulkImportRequest struct {
	Records []CompanyImportRecord `json:"records" validate:"required,min=1"`
}

// ImportError describe el fallo de un registro individual, con su índice.
type ImportError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ImportResult resultado de la importación: creados vs errores parciales
// (semántica HTTP 207 cuando Errors no está vacío).
type ImportResult struct {
	Count  int           `json:"count"`
	Errors []ImportError `json:"errors"`
}
