package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// BulkLimit rechaza lotes que excedan maxItems antes de tocar el caso de uso.
// Cuenta ids o records según lo que traiga el body; un body ilegible se deja
// pasar para que la validación del handler responda con detalle.
func BulkLimit(maxItems int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var probe struct {
			IDs     []json.RawMessage `json:"ids"`
			Records []json.RawMessage `json:"records"`
		}
		if err := json.Unmarshal(c.Body(), &probe); err == nil {
			if len(probe.IDs) > maxItems || len(probe.Records) > maxItems {
				return respondErr(c, fiber.StatusBadRequest, "TOO_MANY_ITEMS", "el lote excede el máximo permitido")
			}
		}
		return c.Next()
	}
}
