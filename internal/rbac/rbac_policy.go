package rbac

import "go-ems/internal/domain"

// policyTable lists every allowed (actingRole, targetRole, operation).
// Anything not listed is denied. No row targets SUPER_ADMIN with delete.
var policyTable = [][]string{
	// account creation
	{string(domain.RolePublic), string(domain.RoleEmployee), string(domain.OpCreate)},
	{string(domain.RoleAdmin), string(domain.RoleEmployee), string(domain.OpCreate)},
	{string(domain.RoleSuperAdmin), string(domain.RoleAdmin), string(domain.OpCreate)},

	// employee management
	{string(domain.RoleAdmin), string(domain.RoleEmployee), string(domain.OpRead)},
	{string(domain.RoleAdmin), string(domain.RoleEmployee), string(domain.OpUpdate)},
	{string(domain.RoleAdmin), string(domain.RoleEmployee), string(domain.OpDelete)},

	// admin management
	{string(domain.RoleSuperAdmin), string(domain.RoleAdmin), string(domain.OpRead)},
	{string(domain.RoleSuperAdmin), string(domain.RoleAdmin), string(domain.OpUpdate)},
	{string(domain.RoleSuperAdmin), string(domain.RoleAdmin), string(domain.OpDelete)},

	// self service
	{string(domain.RoleEmployee), string(domain.RoleEmployee), string(domain.OpUpdateSelf)},
	{string(domain.RoleEmployee), string(domain.RoleEmployee), string(domain.OpDeleteSelf)},
	{string(domain.RoleAdmin), string(domain.RoleAdmin), string(domain.OpUpdateSelf)},
	{string(domain.RoleAdmin), string(domain.RoleAdmin), string(domain.OpDeleteSelf)},
	{string(domain.RoleSuperAdmin), string(domain.RoleSuperAdmin), string(domain.OpUpdateSelf)},
}

// roleHierarchy: a SUPER_ADMIN inherits every ADMIN permission.
var roleHierarchy = [][]string{
	{string(domain.RoleSuperAdmin), string(domain.RoleAdmin)},
}
