package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/application/workflow"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CompanyHandler maneja el recurso Company, incluidas las transiciones de
// finalización y las acciones masivas de la cola de aprobación.
type CompanyHandler struct {
	uc       *usecase.CompanyUseCase
	workflow *workflow.Service
}

// NewCompanyHandler construye el handler inyectando caso de uso y workflow.
func NewCompanyHandler(uc *usecase.CompanyUseCase, wf *workflow.Service) *CompanyHandler {
	return &CompanyHandler{uc: uc, workflow: wf}
}

func (h *CompanyHandler) actor(c *fiber.Ctx) workflow.Actor {
	return workflow.Actor{ID: GetUserID(c), Role: GetUserRole(c)}
}

// Create godoc
// @Summary      Crear empresa (estado pending)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.Envelope{data=dto.CompanyResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
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
// @Summary      Obtener empresa (finalizadas exigen canReadFinalized)
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope{data=dto.CompanyResponse}
// @Failure      403  {object}  dto.Envelope
// @Router       /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), GetUserRole(c))
	if err != nil {
		return respondDomainErr(c, err)
	}
	if out == nil {
		return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "empresa no encontrada")
	}
	return respondOK(c, out)
}

// ListPending godoc
// @Summary      Cola de aprobación: empresas pendientes
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.CompanyResponse}
// @Router       /api/v1/companies/pending [get]
func (h *CompanyHandler) ListPending(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListPending(c.UserContext(), limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondPage(c, out.Items, out.Page)
}

// ListFinalized godoc
// @Summary      Empresas finalizadas (exige canReadFinalized)
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.CompanyResponse}
// @Router       /api/v1/companies/finalized [get]
func (h *CompanyHandler) ListFinalized(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListFinalized(c.UserContext(), limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondPage(c, out.Items, out.Page)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.CompanyResponse}
// @Router       /api/v1/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
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
// @Summary      Eliminar empresa
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}

// Finalize godoc
// @Summary      Finalizar empresa (pending → finalized)
// @Tags         workflow
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/v1/companies/{id}/finalize [post]
func (h *CompanyHandler) Finalize(c *fiber.Ctx) error {
	c.Locals(LocalAuditAction, entity.ActionFinalize)
	if err := h.workflow.Finalize(c.UserContext(), c.Params("id"), h.actor(c)); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"finalization_status": entity.FinalizationFinalized})
}

// Unfinalize godoc
// @Summary      Revertir finalización (finalized → pending)
// @Tags         workflow
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/companies/{id}/unfinalize [post]
func (h *CompanyHandler) Unfinalize(c *fiber.Ctx) error {
	c.Locals(LocalAuditAction, entity.ActionFinalize)
	if err := h.workflow.Unfinalize(c.UserContext(), c.Params("id"), h.actor(c)); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"finalization_status": entity.FinalizationPending})
}

// BulkApprove godoc
// @Summary      Finalizar un lote de empresas; cada id es independiente
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkIDsRequest  true  "IDs a finalizar"
// @Success      200   {object}  dto.Envelope{data=dto.BulkActionResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/companies/bulk/approve [post]
func (h *CompanyHandler) BulkApprove(c *fiber.Ctx) error {
	c.Locals(LocalAuditAction, entity.ActionFinalize)
	var in dto.BulkIDsRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	updated, err := h.workflow.BulkApprove(c.UserContext(), in.IDs, h.actor(c))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, dto.BulkActionResponse{Updated: updated})
}

// BulkReject godoc
// @Summary      Rechazar un lote: registra la decisión sin mutar estado
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkIDsRequest  true  "IDs a rechazar"
// @Success      200   {object}  dto.Envelope{data=dto.BulkActionResponse}
// @Router       /api/v1/companies/bulk/reject [post]
func (h *CompanyHandler) BulkReject(c *fiber.Ctx) error {
	c.Locals(LocalAuditAction, entity.ActionReject)
	var in dto.BulkIDsRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	updated, err := h.workflow.BulkReject(c.UserContext(), in.IDs, h.actor(c))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, dto.BulkActionResponse{Updated: updated})
}

// BulkImport godoc
// @Summary      Importar empresas; registros inválidos se reportan por índice
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkImportRequest  true  "Registros a importar"
// @Success      200   {object}  dto.Envelope{data=dto.ImportResult}
// @Success      207   {object}  dto.Envelope{data=dto.ImportResult}
// @Router       /api/v1/companies/bulk/import [post]
func (h *CompanyHandler) BulkImport(c *fiber.Ctx) error {
	var in dto.BulkImportRequest
	if fields := parseAndValidate(c, &in); fields != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida", fields...)
	}
	result, err := h.workflow.BulkImport(c.UserContext(), in.Records, h.actor(c))
	if err != nil {
		return respondDomainErr(c, err)
	}
	status := fiber.StatusOK
	if len(result.Errors) > 0 {
		status = fiber.StatusMultiStatus
	}
	return respond(c, status, result, nil)
}
