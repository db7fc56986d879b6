package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se mapean a códigos HTTP
// en la capa de interfaces.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEntityFinalized    = errors.New("la entidad está finalizada")
	ErrAlreadyFinalized   = errors.New("la entidad ya está finalizada")
	ErrNotFinalized       = errors.New("la entidad no está finalizada")
	ErrBulkLimitExceeded  = errors.New("demasiados elementos en la operación masiva")
	ErrTicketsDisabled    = errors.New("el usuario no puede levantar tickets")
)
