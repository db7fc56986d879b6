package dto

import "time"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// FieldError detalle de validación a nivel de campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ErrorResponse cuerpo de error dentro del envelope.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// Envelope es la respuesta estándar de la API:
// {success, data, pagination?, error?, timestamp}.
type Envelope struct {
	Success    bool           `json:"success"`
	Data       any            `json:"data,omitempty"`
	Pagination *PageResponse  `json:"pagination,omitempty"`
	Error      *ErrorResponse `json:"error,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}
