package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

var validate = validator.New()

// validateStruct corre las tags validate del DTO y traduce cada violación a un
// FieldError {field, message, code}.
func validateStruct(in any) []dto.FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.FieldError{{Field: "", Message: err.Error(), Code: "invalid"}}
	}
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, dto.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
			Code:    fe.Tag(),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "uuid":
		return "debe ser un UUID"
	case "min":
		return fmt.Sprintf("debe tener al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener como máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "numeric":
		return "debe ser numérico"
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}

// parseAndValidate parsea el body JSON y corre la validación; devuelve los
// errores de campo, o nil si todo está bien.
func parseAndValidate(c *fiber.Ctx, in any) []dto.FieldError {
	if err := c.BodyParser(in); err != nil {
		return []dto.FieldError{{Field: "", Message: "cuerpo JSON inválido", Code: "body"}}
	}
	return validateStruct(in)
}
