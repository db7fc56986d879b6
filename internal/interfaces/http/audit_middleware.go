package http

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/tu-usuario/crm-pro/internal/application/audit"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Locals keys con los que un handler refina la entrada de auditoría de su ruta.
const (
	LocalAuditAction   = "audit_action"    // override: FINALIZE, REJECT
	LocalAuditEntityID = "audit_entity_id" // para rutas POST sin :id
)

// maxAuditBody acota el body que se copia al log de auditoría.
const maxAuditBody = 4096

// Audited registra exactamente una entrada de auditoría por mutación que
// atraviese la ruta, incluso si el handler falla. La escritura es asíncrona:
// la respuesta no espera al log.
func Audited(recorder *audit.Recorder, entityType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		var body json.RawMessage
		if raw := c.Body(); len(raw) > 0 && len(raw) <= maxAuditBody && json.Valid(raw) {
			body = append([]byte(nil), raw...)
		}

		err := c.Next()

		// La escritura corre en una goroutine cuando el ctx ya fue reciclado
		// para otro request: todo string respaldado por los buffers de fasthttp
		// se copia antes de soltar la entrada.
		method := utils.CopyString(c.Method())
		action := actionForMethod(method)
		if override, ok := c.Locals(LocalAuditAction).(string); ok && override != "" {
			action = override
		}
		entityID := utils.CopyString(c.Params("id"))
		if override, ok := c.Locals(LocalAuditEntityID).(string); ok && override != "" {
			entityID = override
		}
		status := c.Response().StatusCode()
		recorder.Record(audit.Entry{
			UserID:     utils.CopyString(GetUserID(c)),
			Action:     action,
			EntityType: entityType,
			EntityID:   entityID,
			IPAddress:  utils.CopyString(c.IP()),
			UserAgent:  utils.CopyString(c.Get("User-Agent")),
			Changes: audit.Changes{
				Method:     method,
				URL:        utils.CopyString(c.OriginalURL()),
				Body:       body,
				DurationMS: time.Since(start).Milliseconds(),
				Success:    err == nil && status < 400,
				StatusCode: status,
			},
		})
		return err
	}
}

func actionForMethod(method string) string {
	switch method {
	case fiber.MethodPost:
		return entity.ActionCreate
	case fiber.MethodPut, fiber.MethodPatch:
		return entity.ActionUpdate
	case fiber.MethodDelete:
		return entity.ActionDelete
	default:
		return entity.ActionRead
	}
}
