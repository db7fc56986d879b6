package rbac

// Flag identifica un permiso individual dentro de un PermissionSet.
type Flag string

// Flags de permiso. Los nombres JSON coinciden con los que consume la UI,
// de modo que la tabla exportada por /api/v1/meta/permissions sirve como
// única fuente de verdad para servidor y cliente.
const (
	PermCanRead               Flag = "canRead"
	PermCanReadFinalized      Flag = "canReadFinalized"
	PermCanCreate             Flag = "canCreate"
	PermCanEdit               Flag = "canEdit"
	PermCanDelete             Flag = "canDelete"
	PermCanBulkDelete         Flag = "canBulkDelete"
	PermCanAssignTasks        Flag = "canAssignTasks"
	PermCanUpdateOwnTasks     Flag = "canUpdateOwnTasks"
	PermCanUpdateAllTasks     Flag = "canUpdateAllTasks"
	PermCanFinalize           Flag = "canFinalize"
	PermCanEditFinalized      Flag = "canEditFinalized"
	PermCanManageUsers        Flag = "canManageUsers"
	PermCanComment            Flag = "canComment"
	PermCanManageCustomFields Flag = "canManageCustomFields"
	PermCanExportFinalized    Flag = "canExportFinalized"
)

// PermissionSet agrupa los permisos de un rol. Inmutable después del arranque.
type PermissionSet struct {
	CanRead               bool `json:"canRead"`
	CanReadFinalized      bool `json:"canReadFinalized"`
	CanCreate             bool `json:"canCreate"`
	CanEdit               bool `json:"canEdit"`
	CanDelete             bool `json:"canDelete"`
	CanBulkDelete         bool `json:"canBulkDelete"`
	CanAssignTasks        bool `json:"canAssignTasks"`
	CanUpdateOwnTasks     bool `json:"canUpdateOwnTasks"`
	CanUpdateAllTasks     bool `json:"canUpdateAllTasks"`
	CanFinalize           bool `json:"canFinalize"`
	CanEditFinalized      bool `json:"canEditFinalized"`
	CanManageUsers        bool `json:"canManageUsers"`
	CanComment            bool `json:"canComment"`
	CanManageCustomFields bool `json:"canManageCustomFields"`
	CanExportFinalized    bool `json:"canExportFinalized"`
}

// Has consulta un flag del set. O(1), nunca falla: un flag desconocido es false.
func (p PermissionSet) Has(flag Flag) bool {
	switch flag {
	case PermCanRead:
		return p.CanRead
	case PermCanReadFinalized:
		return p.CanReadFinalized
	case PermCanCreate:
		return p.CanCreate
	case PermCanEdit:
		return p.CanEdit
	case PermCanDelete:
		return p.CanDelete
	case PermCanBulkDelete:
		return p.CanBulkDelete
	case PermCanAssignTasks:
		return p.CanAssignTasks
	case PermCanUpdateOwnTasks:
		return p.CanUpdateOwnTasks
	case PermCanUpdateAllTasks:
		return p.CanUpdateAllTasks
	case PermCanFinalize:
		return p.CanFinalize
	case PermCanEditFinalized:
		return p.CanEditFinalized
	case PermCanManageUsers:
		return p.CanManageUsers
	case PermCanComment:
		return p.CanComment
	case PermCanManageCustomFields:
		return p.CanManageCustomFields
	case PermCanExportFinalized:
		return p.CanExportFinalized
	}
	return false
}

// permissionTable mapa rol → permisos, fijo al arranque del proceso.
// Admin y Head tienen acceso total; DataCollector y Converter trabajan solo
// sobre entidades pendientes y sus propias tareas.
var permissionTable = map[string]PermissionSet{
	RoleAdmin: {
		CanRead: true, CanReadFinalized: true, CanCreate: true, CanEdit: true,
		CanDelete: true, CanBulkDelete: true, CanAssignTasks: true,
		CanUpdateOwnTasks: true, CanUpdateAllTasks: true, CanFinalize: true,
		CanEditFinalized: true, CanManageUsers: true, CanComment: true,
		CanManageCustomFields: true, CanExportFinalized: true,
	},
	RoleHead: {
		CanRead: true, CanReadFinalized: true, CanCreate: true, CanEdit: true,
		CanDelete: true, CanBulkDelete: true, CanAssignTasks: true,
		CanUpdateOwnTasks: true, CanUpdateAllTasks: true, CanFinalize: true,
		CanEditFinalized: true, CanManageUsers: true, CanComment: true,
		CanManageCustomFields: true, CanExportFinalized: true,
	},
	RoleSubHead: {
		CanRead: true, CanReadFinalized: true, CanCreate: true, CanEdit: true,
		CanAssignTasks: true, CanUpdateOwnTasks: true, CanUpdateAllTasks: true,
		CanFinalize: true, CanComment: true, CanExportFinalized: true,
	},
	RoleManager: {
		CanRead: true, CanReadFinalized: true, CanCreate: true, CanEdit: true,
		CanAssignTasks: true, CanUpdateOwnTasks: true, CanUpdateAllTasks: true,
		CanComment: true,
	},
	RoleConverter: {
		CanRead: true, CanCreate: true, CanEdit: true,
		CanUpdateOwnTasks: true, CanComment: true,
	},
	RoleDataCollector: {
		CanRead: true, CanCreate: true, CanEdit: true,
		CanUpdateOwnTasks: true, CanComment: true,
	},
}

// Permissions devuelve el PermissionSet del rol. Para un rol desconocido
// devuelve el set más restrictivo (todo en false); nunca lanza pánico.
func Permissions(role string) PermissionSet {
	return permissionTable[role]
}

// Has consulta un permiso de un rol. Lookup puro, O(1).
func Has(role string, flag Flag) bool {
	return permissionTable[role].Has(flag)
}

// Table devuelve una copia de la tabla completa rol → permisos.
// La expone el endpoint de metadatos para que la UI comparta la misma fuente.
func Table() map[string]PermissionSet {
	out := make(map[string]PermissionSet, len(permissionTable))
	for role, set := range permissionTable {
		out[role] = set
	}
	return out
}
