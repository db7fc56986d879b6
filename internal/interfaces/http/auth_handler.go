package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler inyectando el caso de uso.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registro público (siempre crea data_collector)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de registro"
// @Success      201   {object}  dto.Envelope{data=dto.UserResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondCreated(c, out)
}

// Login godoc
// @Summary      Login con email y password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		// Mismo error para usuario inexistente y password incorrecto.
		return respondErr(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "credenciales inválidas")
	}
	return respondOK(c, out)
}
