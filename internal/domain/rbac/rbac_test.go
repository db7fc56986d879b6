package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
)

// Caso 1: rol desconocido → set más restrictivo (todo en false), sin pánico.
func TestPermissions_RolDesconocidoTodoFalse(t *testing.T) {
	set := rbac.Permissions("superadmin-inexistente")
	for _, flag := range allFlags() {
		assert.False(t, set.Has(flag), "rol desconocido no debe tener el permiso %s", flag)
	}
	assert.False(t, rbac.Has("", rbac.PermCanRead), "rol vacío no debe tener permisos")
}

// Caso 2: Permissions y Has son consistentes entre sí para todos los roles.
func TestPermissions_HasCoincideConLaTabla(t *testing.T) {
	for _, role := range rbac.AllRoles {
		set := rbac.Permissions(role)
		for _, flag := range allFlags() {
			assert.Equal(t, set.Has(flag), rbac.Has(role, flag),
				"Has(%s, %s) debe coincidir con Permissions", role, flag)
		}
	}
}

// Caso 3: admin y head comparten el nivel más alto (acceso total).
func TestPermissions_AdminYHeadAccesoTotal(t *testing.T) {
	for _, role := range []string{rbac.RoleAdmin, rbac.RoleHead} {
		for _, flag := range allFlags() {
			assert.True(t, rbac.Has(role, flag), "%s debe tener %s", role, flag)
		}
	}
}

// Caso 4: data_collector y converter no leen entidades finalizadas ni finalizan.
func TestPermissions_RolesBajosSinFinalizacion(t *testing.T) {
	for _, role := range []string{rbac.RoleConverter, rbac.RoleDataCollector} {
		assert.False(t, rbac.Has(role, rbac.PermCanReadFinalized), "%s no lee finalizadas", role)
		assert.False(t, rbac.Has(role, rbac.PermCanFinalize), "%s no finaliza", role)
		assert.False(t, rbac.Has(role, rbac.PermCanEditFinalized), "%s no edita finalizadas", role)
		assert.False(t, rbac.Has(role, rbac.PermCanManageUsers), "%s no administra usuarios", role)
	}
}

// Caso 5: la jerarquía nunca incluye al propio rol ni a un rol superior.
func TestAssignableRoles_SinEscalamiento(t *testing.T) {
	rank := map[string]int{
		rbac.RoleAdmin: 0, rbac.RoleHead: 0, rbac.RoleSubHead: 1,
		rbac.RoleManager: 2, rbac.RoleConverter: 3, rbac.RoleDataCollector: 4,
	}
	for _, actor := range rbac.AllRoles {
		for _, target := range rbac.AssignableRoles(actor) {
			assert.NotEqual(t, actor, target, "%s no debe poder asignarse a sí mismo", actor)
			assert.Greater(t, rank[target], rank[actor],
				"%s no debe poder asignar a %s (igual o superior)", actor, target)
		}
	}
}

// Caso 6: data_collector no asigna a nadie; rol desconocido tampoco.
func TestAssignableRoles_ConjuntosVacios(t *testing.T) {
	assert.Empty(t, rbac.AssignableRoles(rbac.RoleDataCollector))
	assert.Empty(t, rbac.AssignableRoles("rol-fantasma"))
}

type fakeUser struct{ role string }

func (u fakeUser) GetRole() string { return u.role }

// Caso 7: AssignableUsers filtra sin escalamiento — un manager nunca ve un admin.
func TestAssignableUsers_ManagerNoVeAdmins(t *testing.T) {
	users := []fakeUser{
		{role: rbac.RoleAdmin},
		{role: rbac.RoleManager},
		{role: rbac.RoleConverter},
		{role: rbac.RoleDataCollector},
	}
	out := rbac.AssignableUsers(users, rbac.RoleManager)
	require.Len(t, out, 2)
	for _, u := range out {
		assert.Contains(t, []string{rbac.RoleConverter, rbac.RoleDataCollector}, u.GetRole())
	}
}

// Caso 8: CanAssignTo respeta la misma jerarquía punto a punto.
func TestCanAssignTo_Jerarquia(t *testing.T) {
	assert.True(t, rbac.CanAssignTo(rbac.RoleAdmin, rbac.RoleDataCollector))
	assert.True(t, rbac.CanAssignTo(rbac.RoleConverter, rbac.RoleDataCollector))
	assert.False(t, rbac.CanAssignTo(rbac.RoleManager, rbac.RoleAdmin))
	assert.False(t, rbac.CanAssignTo(rbac.RoleDataCollector, rbac.RoleDataCollector))
}

func allFlags() []rbac.Flag {
	return []rbac.Flag{
		rbac.PermCanRead, rbac.PermCanReadFinalized, rbac.PermCanCreate,
		rbac.PermCanEdit, rbac.PermCanDelete, rbac.PermCanBulkDelete,
		rbac.PermCanAssignTasks, rbac.PermCanUpdateOwnTasks, rbac.PermCanUpdateAllTasks,
		rbac.PermCanFinalize, rbac.PermCanEditFinalized, rbac.PermCanManageUsers,
		rbac.PermCanComment, rbac.PermCanManageCustomFields, rbac.PermCanExportFinalized,
	}
}
