package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/internal/metrics"
)

// GuardConfig parametriza EntityGuard por recurso.
type GuardConfig struct {
	// EntityType tipo que resuelve el lookup (company, contact, task...).
	EntityType string
	// AllowManagers deja pasar a manager sin ser dueño directo. admin, head y
	// sub_head siempre pasan el chequeo de ownership.
	AllowManagers bool
	// Param nombre del parámetro de ruta con el ID; por defecto "id".
	Param string
}

// EntityGuard corre después del permiso de escritura, solo en rutas mutantes
// con :id. Aplica dos reglas en orden: una entidad finalizada (o que hereda
// finalización) solo se muta con canEditFinalized; y los roles de campo solo
// mutan entidades de las que son dueños.
func EntityGuard(states repository.EntityStateRepository, cfg GuardConfig) fiber.Handler {
	param := cfg.Param
	if param == "" {
		param = "id"
	}
	return func(c *fiber.Ctx) error {
		id := c.Params(param)
		if id == "" {
			return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "id es requerido")
		}
		state, err := states.Lookup(c.UserContext(), cfg.EntityType, id)
		if err != nil {
			return respondErr(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
		}
		if !state.Exists {
			return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
		}

		role := GetUserRole(c)
		if state.Finalized && !rbac.Has(role, rbac.PermCanEditFinalized) {
			metrics.AuthzDecisionsTotal.WithLabelValues("finalized", "deny").Inc()
			return respondErr(c, fiber.StatusForbidden, "ENTITY_FINALIZED", "la entidad está finalizada")
		}

		if !ownershipSatisfied(c, role, cfg, state) {
			metrics.AuthzDecisionsTotal.WithLabelValues("ownership", "deny").Inc()
			return respondErr(c, fiber.StatusForbidden, "FORBIDDEN", "no eres dueño de este recurso")
		}
		return c.Next()
	}
}

func ownershipSatisfied(c *fiber.Ctx, role string, cfg GuardConfig, state *repository.EntityState) bool {
	switch role {
	case rbac.RoleAdmin, rbac.RoleHead, rbac.RoleSubHead:
		return true
	case rbac.RoleManager:
		if cfg.AllowManagers {
			return true
		}
	}
	userID := GetUserID(c)
	for _, owner := range state.OwnerIDs {
		if owner == userID {
			return true
		}
	}
	return false
}
