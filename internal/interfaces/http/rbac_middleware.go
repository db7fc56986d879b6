package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/metrics"
)

// RequireRole deja pasar solo a los roles listados. Corre después de
// AuthMiddleware; responde 403 INSUFFICIENT_ROLE si el rol no está en la lista.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role := GetUserRole(c)
		if !allowed[role] {
			metrics.AuthzDecisionsTotal.WithLabelValues("role", "deny").Inc()
			return respondErr(c, fiber.StatusForbidden, "INSUFFICIENT_ROLE", "el rol no tiene acceso a esta ruta")
		}
		metrics.AuthzDecisionsTotal.WithLabelValues("role", "allow").Inc()
		return c.Next()
	}
}

// RequirePermission exige un flag de la matriz de permisos del rol.
func RequirePermission(flag rbac.Flag) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rbac.Has(GetUserRole(c), flag) {
			metrics.AuthzDecisionsTotal.WithLabelValues("permission", "deny").Inc()
			return respondErr(c, fiber.StatusForbidden, "FORBIDDEN", "el rol no tiene el permiso requerido")
		}
		metrics.AuthzDecisionsTotal.WithLabelValues("permission", "allow").Inc()
		return c.Next()
	}
}

// WritePermission deriva el permiso requerido del verbo HTTP: POST exige
// canCreate, PUT/PATCH canEdit y DELETE canDelete. Los GET pasan siempre
// (la visibilidad de finalizadas se decide en el caso de uso).
func WritePermission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var flag rbac.Flag
		switch c.Method() {
		case fiber.MethodPost:
			flag = rbac.PermCanCreate
		case fiber.MethodPut, fiber.MethodPatch:
			flag = rbac.PermCanEdit
		case fiber.MethodDelete:
			flag = rbac.PermCanDelete
		default:
			return c.Next()
		}
		if !rbac.Has(GetUserRole(c), flag) {
			metrics.AuthzDecisionsTotal.WithLabelValues("write", "deny").Inc()
			return respondErr(c, fiber.StatusForbidden, "FORBIDDEN", "el rol no puede escribir este recurso")
		}
		metrics.AuthzDecisionsTotal.WithLabelValues("write", "allow").Inc()
		return c.Next()
	}
}
