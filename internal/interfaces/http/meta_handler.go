package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
)

// MetaHandler expone metadatos de la API que los clientes consultan para
// construir su UI, como la matriz rol/permiso.
type MetaHandler struct{}

// NewMetaHandler construye el handler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Permissions godoc
// @Summary      Matriz completa de permisos por rol
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/meta/permissions [get]
func (h *MetaHandler) Permissions(c *fiber.Ctx) error {
	return respondOK(c, rbac.Table())
}
