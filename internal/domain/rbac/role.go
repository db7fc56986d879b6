package rbac

// Roles válidos del sistema, en orden de jerarquía descendente.
// Admin y Head comparten el nivel más alto.
const (
	RoleAdmin         = "admin"
	RoleHead          = "head"
	RoleSubHead       = "sub_head"
	RoleManager       = "manager"
	RoleConverter     = "converter"
	RoleDataCollector = "data_collector"
)

// AllRoles lista los roles conocidos (útil para validación y seeds).
var AllRoles = []string{
	RoleAdmin, RoleHead, RoleSubHead, RoleManager, RoleConverter, RoleDataCollector,
}

// IsValidRole indica si el rol pertenece al enum del sistema.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHead, RoleSubHead, RoleManager, RoleConverter, RoleDataCollector:
		return true
	}
	return false
}

// assignable define a qué roles puede delegar trabajo cada actor.
// Nunca incluye al propio rol ni a roles superiores (sin escalamiento de privilegios).
var assignable = map[string][]string{
	RoleAdmin:         {RoleSubHead, RoleManager, RoleConverter, RoleDataCollector},
	RoleHead:          {RoleSubHead, RoleManager, RoleConverter, RoleDataCollector},
	RoleSubHead:       {RoleManager, RoleConverter, RoleDataCollector},
	RoleManager:       {RoleConverter, RoleDataCollector},
	RoleConverter:     {RoleDataCollector},
	RoleDataCollector: {},
}

// AssignableRoles devuelve los roles a los que el actor puede asignar trabajo.
// Para un rol desconocido devuelve el conjunto vacío, nunca un error.
func AssignableRoles(actorRole string) []string {
	roles, ok := assignable[actorRole]
	if !ok {
		return []string{}
	}
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}

// CanAssignTo indica si actorRole puede asignar trabajo a targetRole.
func CanAssignTo(actorRole, targetRole string) bool {
	for _, r := range assignable[actorRole] {
		if r == targetRole {
			return true
		}
	}
	return false
}

// RoleHolder es lo mínimo que necesita el filtro de asignables de un usuario.
type RoleHolder interface {
	GetRole() string
}

// AssignableUsers filtra la lista de usuarios dejando solo aquellos cuyo rol
// es asignable por el actor. Filtro puro, sin efectos secundarios; se usa al
// poblar los selectores de "asignar a".
func AssignableUsers[T RoleHolder](users []T, actorRole string) []T {
	allowed := make(map[string]struct{})
	for _, r := range assignable[actorRole] {
		allowed[r] = struct{}{}
	}
	out := make([]T, 0, len(users))
	for _, u := range users {
		if _, ok := allowed[u.GetRole()]; ok {
			out = append(out, u)
		}
	}
	return out
}
