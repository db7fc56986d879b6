package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// FollowUpHandler maneja el recurso FollowUp.
type FollowUpHandler struct {
	uc *usecase.FollowUpUseCase
}

// NewFollowUpHandler construye el handler inyectando el caso de uso.
func NewFollowUpHandler(uc *usecase.FollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{uc: uc}
}

// Create godoc
// @Summary      Crear seguimiento comercial sobre una empresa
// @Tags         followups
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFollowUpRequest  true  "Datos del seguimiento"
// @Success      201   {object}  dto.Envelope{data=dto.FollowUpResponse}
// @Router       /api/v1/followups [post]
func (h *FollowUpHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFollowUpRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	c.Locals(LocalAuditEntityID, out.ID)
	return respondCreated(c, out)
}

// GetByID godoc
// @Summary      Obtener seguimiento por ID
// @Tags         followups
// @Produce      json
// @Param        id  path  string  true  "ID del seguimiento"
// @Success      200  {object}  dto.Envelope{data=dto.FollowUpResponse}
// @Router       /api/v1/followups/{id} [get]
func (h *FollowUpHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	if out == nil {
		return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "seguimiento no encontrado")
	}
	return respondOK(c, out)
}

// ListByCompany godoc
// @Summary      Listar seguimientos de una empresa
// @Tags         followups
// @Produce      json
// @Param        company_id  query  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope{data=[]dto.FollowUpResponse}
// @Router       /api/v1/followups [get]
func (h *FollowUpHandler) ListByCompany(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "company_id es requerido")
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListByCompany(c.UserContext(), companyID, limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondPage(c, out.Items, out.Page)
}

// Update godoc
// @Summary      Actualizar seguimiento
// @Tags         followups
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del seguimiento"
// @Param        body  body  dto.UpdateFollowUpRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.FollowUpResponse}
// @Router       /api/v1/followups/{id} [put]
func (h *FollowUpHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFollowUpRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Eliminar seguimiento
// @Tags         followups
// @Produce      json
// @Param        id  path  string  true  "ID del seguimiento"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/followups/{id} [delete]
func (h *FollowUpHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
