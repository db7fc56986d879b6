package dto

import "time"

// RegisterRequest entrada para registro (auth).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Region   string `json:"region" validate:"omitempty,max=100"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest entrada de administración para crear un usuario
// (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Role            string `json:"role" validate:"required,oneof=admin head sub_head manager converter data_collector"`
	Region          string `json:"region" validate:"omitempty,max=100"`
	CanRaiseTickets bool   `json:"can_raise_tickets"`
}

// UpdateUserRequest entrada para actualizar un usuario. El cambio de rol solo
// pasa por este endpoint, gateado por canManageUsers.
type UpdateUserRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role            *string `json:"role" validate:"omitempty,oneof=admin head sub_head manager converter data_collector"`
	Region          *string `json:"region" validate:"omitempty,max=100"`
	Status          *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	CanRaiseTickets *bool   `json:"can_raise_tickets"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Region          string    `json:"region,omitempty"`
	CanRaiseTickets bool      `json:"can_raise_tickets"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
