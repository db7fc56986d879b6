package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/pkg/jwt"
)

// Locals keys de la identidad verificada en Fiber.
const (
	LocalUserID          = "user_id"
	LocalUserRole        = "user_role"
	LocalUserRegion      = "user_region"
	LocalCanRaiseTickets = "can_raise_tickets"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
// El rol viaja en el token: las decisiones de autorización no tocan la base.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondErr(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondErr(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondErr(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondErr(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserRole, claims.Role)
		c.Locals(LocalUserRegion, claims.Region)
		c.Locals(LocalCanRaiseTickets, claims.CanRaiseTickets)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserRole devuelve el rol del contexto.
func GetUserRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserRole).(string)
	return s
}

// GetCanRaiseTickets devuelve el flag por-usuario de tickets.
func GetCanRaiseTickets(c *fiber.Ctx) bool {
	b, _ := c.Locals(LocalCanRaiseTickets).(bool)
	return b
}
