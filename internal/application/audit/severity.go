package audit

import (
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Tipos de entidad con tratamiento especial en la clasificación.
const (
	EntityUser     = "user"
	EntityCompany  = "company"
	EntityAuditLog = "audit_log"
)

// Classify asigna severidad a una acción auditada:
// DELETE sobre user → critical; DELETE en general → medium; FINALIZE → medium;
// CREATE sobre user → medium; el resto → low.
func Classify(action, entityType string) string {
	switch action {
	case entity.ActionDelete:
		if entityType == EntityUser {
			return entity.SeverityCritical
		}
		return entity.SeverityMedium
	case entity.ActionFinalize:
		return entity.SeverityMedium
	case entity.ActionCreate:
		if entityType == EntityUser {
			return entity.SeverityMedium
		}
	}
	return entity.SeverityLow
}

// IsSensitive indica si la operación dispara un SecurityEvent además de la
// entrada de auditoría: DELETE o FINALIZE, o entidades user/company/audit_log.
func IsSensitive(action, entityType string) bool {
	if action == entity.ActionDelete || action == entity.ActionFinalize {
		return true
	}
	switch entityType {
	case EntityUser, EntityCompany, EntityAuditLog:
		return true
	}
	return false
}

// EventType sintetiza el tipo de evento de seguridad: AUDIT_{action}_{entityType}.
func EventType(action, entityType string) string {
	return fmt.Sprintf("AUDIT_%s_%s", action, entityType)
}
