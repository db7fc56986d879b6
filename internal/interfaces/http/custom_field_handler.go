package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// CustomFieldHandler administra definiciones de campos personalizados.
type CustomFieldHandler struct {
	uc *usecase.CustomFieldUseCase
}

// NewCustomFieldHandler construye el handler inyectando el caso de uso.
func NewCustomFieldHandler(uc *usecase.CustomFieldUseCase) *CustomFieldHandler {
	return &CustomFieldHandler{uc: uc}
}

// Create godoc
// @Summary      Definir un campo personalizado (exige canManageCustomFields)
// @Tags         custom-fields
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomFieldRequest  true  "Definición"
// @Success      201   {object}  dto.Envelope{data=dto.CustomFieldResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/custom-fields [post]
func (h *CustomFieldHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomFieldRequest
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

// List godoc
// @Summary      Listar definiciones por tipo de entidad
// @Tags         custom-fields
// @Produce      json
// @Param        entity_type  query  string  true  "Tipo de entidad"
// @Success      200  {object}  dto.Envelope{data=[]dto.CustomFieldResponse}
// @Router       /api/v1/custom-fields [get]
func (h *CustomFieldHandler) List(c *fiber.Ctx) error {
	entityType := c.Query("entity_type")
	if entityType == "" {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entity_type es requerido")
	}
	out, err := h.uc.ListByEntityType(c.UserContext(), entityType)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, out)
}

// Update godoc
// @Summary      Actualizar una definición (exige canManageCustomFields)
// @Tags         custom-fields
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la definición"
// @Param        body  body  dto.UpdateCustomFieldRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.CustomFieldResponse}
// @Router       /api/v1/custom-fields/{id} [put]
func (h *CustomFieldHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomFieldRequest
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
// @Summary      Eliminar una definición (exige canManageCustomFields)
// @Tags         custom-fields
// @Produce      json
// @Param        id  path  string  true  "ID de la definición"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/custom-fields/{id} [delete]
func (h *CustomFieldHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
