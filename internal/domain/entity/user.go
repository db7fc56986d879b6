package entity

import "time"

// Estados de cuenta de usuario.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User representa un usuario del sistema. El rol gobierna todos los permisos;
// CanRaiseTickets es un override por usuario independiente del rol.
type User struct {
	ID              string
	Email           string
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	Name            string
	Role            string // ver constantes rbac.Role*
	Region          string
	CanRaiseTickets bool
	Status          string // active, inactive, suspended
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GetRole implementa rbac.RoleHolder para el filtro de usuarios asignables.
func (u *User) GetRole() string { return u.Role }
