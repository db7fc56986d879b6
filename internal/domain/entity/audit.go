package entity

import "time"

// Acciones registradas en el log de auditoría. CREATE/READ/UPDATE/DELETE se
// derivan del verbo HTTP; FINALIZE y REJECT provienen del workflow.
const (
	ActionCreate   = "CREATE"
	ActionRead     = "READ"
	ActionUpdate   = "UPDATE"
	ActionDelete   = "DELETE"
	ActionFinalize = "FINALIZE"
	ActionReject   = "REJECT"
)

// Severidades de un evento de seguridad.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// AuditLog es una entrada append-only del log de auditoría. La aplicación
// nunca la muta ni la elimina.
type AuditLog struct {
	ID         string // ULID, ordenable por tiempo
	UserID     string
	Action     string
	EntityType string
	EntityID   string
	Changes    []byte // JSON: method, url, body opcional, duration, success, status
	IPAddress  string
	CreatedAt  time.Time
}

// SecurityEvent es el registro paralelo de una operación sensible. Append-only.
type SecurityEvent struct {
	ID        string // ULID
	EventType string // AUDIT_{action}_{entityType}
	UserID    string
	IPAddress string
	UserAgent string
	Details   []byte // JSON
	Severity  string // low, medium, high, critical
	CreatedAt time.Time
}
