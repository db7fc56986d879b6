package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// CommentHandler maneja comentarios sobre entidades.
type CommentHandler struct {
	uc *usecase.CommentUseCase
}

// NewCommentHandler construye el handler inyectando el caso de uso.
func NewCommentHandler(uc *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Create godoc
// @Summary      Comentar una entidad (exige canComment)
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCommentRequest  true  "Comentario"
// @Success      201   {object}  dto.Envelope{data=dto.CommentResponse}
// @Router       /api/v1/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), GetUserRole(c), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	c.Locals(LocalAuditEntityID, out.ID)
	return respondCreated(c, out)
}

// ListByEntity godoc
// @Summary      Listar comentarios de una entidad
// @Tags         comments
// @Produce      json
// @Param        entity_type  query  string  true  "Tipo de entidad"
// @Param        entity_id    query  string  true  "ID de la entidad"
// @Success      200  {object}  dto.Envelope{data=[]dto.CommentResponse}
// @Router       /api/v1/comments [get]
func (h *CommentHandler) ListByEntity(c *fiber.Ctx) error {
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	if entityType == "" || entityID == "" {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entity_type y entity_id son requeridos")
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListByEntity(c.UserContext(), entityType, entityID, limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondPage(c, out.Items, out.Page)
}

// Delete godoc
// @Summary      Eliminar comentario (exige canDelete)
// @Tags         comments
// @Produce      json
// @Param        id  path  string  true  "ID del comentario"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
