package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// TaskHandler maneja el recurso Task.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler inyectando el caso de uso.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create godoc
// @Summary      Crear y asignar una tarea (respeta la jerarquía de roles)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.Envelope{data=dto.TaskResponse}
// @Failure      403   {object}  dto.Envelope
// @Router       /api/v1/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
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

// GetByID godoc
// @Summary      Obtener tarea por ID
// @Tags         tasks
// @Produce      json
// @Param        id  path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.Envelope{data=dto.TaskResponse}
// @Router       /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	if out == nil {
		return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "tarea no encontrada")
	}
	return respondOK(c, out)
}

// List godoc
// @Summary      Listar todas las tareas
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.TaskResponse}
// @Router       /api/v1/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondPage(c, out.Items, out.Page)
}

// ListMine godoc
// @Summary      Listar las tareas asignadas al actor
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.TaskResponse}
// @Router       /api/v1/tasks/mine [get]
func (h *TaskHandler) ListMine(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListMine(c.UserContext(), GetUserID(c), limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondPage(c, out.Items, out.Page)
}

// Update godoc
// @Summary      Actualizar tarea (no-asignadores: solo status de las propias)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.TaskResponse}
// @Failure      403   {object}  dto.Envelope
// @Router       /api/v1/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
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
// @Summary      Eliminar tarea
// @Tags         tasks
// @Produce      json
// @Param        id  path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
