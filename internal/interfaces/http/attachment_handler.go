package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// AttachmentHandler maneja la subida y descarga de adjuntos.
type AttachmentHandler struct {
	uc *usecase.AttachmentUseCase
}

// NewAttachmentHandler construye el handler inyectando el caso de uso.
func NewAttachmentHandler(uc *usecase.AttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir un adjunto (multipart)
// @Tags         attachments
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true  "Archivo"
// @Param        entity_type  formData  string  true  "Tipo de entidad"
// @Param        entity_id    formData  string  true  "ID de la entidad"
// @Success      201  {object}  dto.Envelope{data=dto.AttachmentResponse}
// @Router       /api/v1/attachments [post]
func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "archivo requerido",
			dto.FieldError{Field: "file", Message: "el archivo es requerido"})
	}
	in := dto.CreateAttachmentRequest{
		EntityType: c.FormValue("entity_type"),
		EntityID:   c.FormValue("entity_id"),
	}
	if fields := validateStruct(in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	f, err := header.Open()
	if err != nil {
		return respondDomainErr(c, err)
	}
	defer f.Close()

	contentType := header.Header.Get("Content-Type")
	out, err := h.uc.Upload(c.UserContext(), GetUserID(c), in, header.Filename, contentType, header.Size, f)
	if err != nil {
		return respondDomainErr(c, err)
	}
	c.Locals(LocalAuditEntityID, out.ID)
	return respondCreated(c, out)
}

// Download godoc
// @Summary      Descargar el contenido de un adjunto
// @Tags         attachments
// @Produce      octet-stream
// @Param        id  path  string  true  "ID del adjunto"
// @Success      200  {file}  binary
// @Router       /api/v1/attachments/{id}/download [get]
func (h *AttachmentHandler) Download(c *fiber.Ctx) error {
	meta, rc, err := h.uc.Download(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	if meta.ContentType != "" {
		c.Set(fiber.HeaderContentType, meta.ContentType)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+meta.FileName+`"`)
	return c.SendStream(rc, int(meta.SizeBytes))
}

// ListByEntity godoc
// @Summary      Listar adjuntos de una entidad
// @Tags         attachments
// @Produce      json
// @Param        entity_type  query  string  true  "Tipo de entidad"
// @Param        entity_id    query  string  true  "ID de la entidad"
// @Success      200  {object}  dto.Envelope{data=[]dto.AttachmentResponse}
// @Router       /api/v1/attachments [get]
func (h *AttachmentHandler) ListByEntity(c *fiber.Ctx) error {
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	if entityType == "" || entityID == "" {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entity_type y entity_id son requeridos")
	}
	out, err := h.uc.ListByEntity(c.UserContext(), entityType, entityID)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Eliminar adjunto (quien lo subió o canDelete)
// @Tags         attachments
// @Produce      json
// @Param        id  path  string  true  "ID del adjunto"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetUserID(c), GetUserRole(c)); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
