package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
)

// respond emite el envelope estándar {success, data, pagination?, error?, timestamp}.
func respond(c *fiber.Ctx, status int, data any, page *dto.PageResponse) error {
	return c.Status(status).JSON(dto.Envelope{
		Success:    true,
		Data:       data,
		Pagination: page,
		Timestamp:  time.Now().UTC(),
	})
}

func respondOK(c *fiber.Ctx, data any) error {
	return respond(c, fiber.StatusOK, data, nil)
}

func respondCreated(c *fiber.Ctx, data any) error {
	return respond(c, fiber.StatusCreated, data, nil)
}

func respondPage(c *fiber.Ctx, data any, page dto.PageResponse) error {
	return respond(c, fiber.StatusOK, data, &page)
}

func respondErr(c *fiber.Ctx, status int, code, message string, fields ...dto.FieldError) error {
	return c.Status(status).JSON(dto.Envelope{
		Success:   false,
		Error:     &dto.ErrorResponse{Code: code, Message: message, Fields: fields},
		Timestamp: time.Now().UTC(),
	})
}

// respondDomainErr mapea errores de dominio al envelope con el status correcto.
func respondDomainErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrForbidden):
		return respondErr(c, fiber.StatusForbidden, "FORBIDDEN", "operación no permitida para este rol")
	case errors.Is(err, domain.ErrUnauthorized):
		return respondErr(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "credenciales inválidas")
	case errors.Is(err, domain.ErrEntityFinalized):
		return respondErr(c, fiber.StatusForbidden, "ENTITY_FINALIZED", "la entidad está finalizada")
	case errors.Is(err, domain.ErrAlreadyFinalized):
		return respondErr(c, fiber.StatusConflict, "ALREADY_FINALIZED", "la empresa ya está finalizada")
	case errors.Is(err, domain.ErrNotFinalized):
		return respondErr(c, fiber.StatusConflict, "NOT_FINALIZED", "la empresa no está finalizada")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respondErr(c, fiber.StatusConflict, "DUPLICATE", "el email ya está registrado")
	case errors.Is(err, domain.ErrDuplicate):
		return respondErr(c, fiber.StatusConflict, "DUPLICATE", "ya existe un recurso igual")
	case errors.Is(err, domain.ErrBulkLimitExceeded):
		return respondErr(c, fiber.StatusBadRequest, "TOO_MANY_ITEMS", "el lote excede el máximo permitido")
	case errors.Is(err, domain.ErrTicketsDisabled):
		return respondErr(c, fiber.StatusForbidden, "TICKETS_DISABLED", "el usuario no puede levantar tickets")
	case errors.Is(err, domain.ErrInvalidInput):
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida")
	default:
		return respondErr(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
	}
}
