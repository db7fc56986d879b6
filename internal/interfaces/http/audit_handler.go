package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// AuditHandler expone el log de auditoría. Solo administradores.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler inyectando el caso de uso.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar el log de auditoría (solo admin)
// @Tags         audit
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.AuditLogResponse}
// @Router       /api/v1/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, out)
}
