package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// ContactHandler maneja el recurso Contact.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler inyectando el caso de uso.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contacto en una empresa
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContactRequest  true  "Datos del contacto"
// @Success      201   {object}  dto.Envelope{data=dto.ContactResponse}
// @Router       /api/v1/contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	c.Locals(LocalAuditEntityID, out.ID)
	return respondCreated(c, out)
}

// GetByID godoc
// @Summary      Obtener contacto por ID
// @Tags         contacts
// @Produce      json
// @Param        id  path  string  true  "ID del contacto"
// @Success      200  {object}  dto.Envelope{data=dto.ContactResponse}
// @Router       /api/v1/contacts/{id} [get]
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	if out == nil {
		return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "contacto no encontrado")
	}
	return respondOK(c, out)
}

// ListByCompany godoc
// @Summary      Listar contactos de una empresa
// @Tags         contacts
// @Produce      json
// @Param        company_id  query  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope{data=[]dto.ContactResponse}
// @Router       /api/v1/contacts [get]
func (h *ContactHandler) ListByCompany(c *fiber.Ctx) error {
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
// @Summary      Actualizar contacto
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del contacto"
// @Param        body  body  dto.UpdateContactRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.ContactResponse}
// @Router       /api/v1/contacts/{id} [put]
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContactRequest
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
// @Summary      Eliminar contacto
// @Tags         contacts
// @Produce      json
// @Param        id  path  string  true  "ID del contacto"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
