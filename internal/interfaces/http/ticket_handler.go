package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// TicketHandler maneja el recurso Ticket.
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

// NewTicketHandler construye el handler inyectando el caso de uso.
func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create godoc
// @Summary      Levantar un ticket (exige canRaiseTickets del usuario)
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "Datos del ticket"
// @Success      201   {object}  dto.Envelope{data=dto.TicketResponse}
// @Failure      403   {object}  dto.Envelope
// @Router       /api/v1/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), GetCanRaiseTickets(c), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	c.Locals(LocalAuditEntityID, out.ID)
	return respondCreated(c, out)
}

// GetByID godoc
// @Summary      Obtener ticket por ID
// @Tags         tickets
// @Produce      json
// @Param        id  path  string  true  "ID del ticket"
// @Success      200  {object}  dto.Envelope{data=dto.TicketResponse}
// @Router       /api/v1/tickets/{id} [get]
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	if out == nil {
		return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "ticket no encontrado")
	}
	return respondOK(c, out)
}

// List godoc
// @Summary      Listar tickets
// @Tags         tickets
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.TicketResponse}
// @Router       /api/v1/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondPage(c, out.Items, out.Page)
}

// Update godoc
// @Summary      Actualizar ticket (quien lo levantó: solo status)
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del ticket"
// @Param        body  body  dto.UpdateTicketRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.TicketResponse}
// @Router       /api/v1/tickets/{id} [put]
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTicketRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetUserID(c), GetUserRole(c), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Eliminar ticket
// @Tags         tickets
// @Produce      json
// @Param        id  path  string  true  "ID del ticket"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/tickets/{id} [delete]
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
