package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// NotificationHandler maneja las notificaciones del usuario autenticado.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler inyectando el caso de uso.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListMine godoc
// @Summary      Listar las notificaciones del actor
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.NotificationResponse}
// @Router       /api/v1/notifications [get]
func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByUser(c.UserContext(), GetUserID(c), limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondPage(c, out.Items, out.Page)
}

// MarkRead godoc
// @Summary      Marcar una notificación propia como leída
// @Tags         notifications
// @Produce      json
// @Param        id  path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"read": true})
}
