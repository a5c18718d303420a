package domain

import "strings"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleEmployee   Role = "EMPLOYEE"

	// RolePublic is the acting role of an unauthenticated caller. Never stored.
	RolePublic Role = "PUBLIC"
)

func (r Role) String() string { return string(r) }

// Valid reports whether r can be stored on an account.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// IsAdministrative is true for roles that own an admin profile.
func (r Role) IsAdministrative() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// ParseRole accepts any casing and surrounding spaces. Empty input is not an error.
func ParseRole(s string) (Role, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", true
	}
	r := Role(s)
	return r, r.Valid()
}

type Operation string

const (
	OpCreate     Operation = "create"
	OpRead       Operation = "read"
	OpUpdate     Operation = "update"
	OpDelete     Operation = "delete"
	OpUpdateSelf Operation = "update_self"
	OpDeleteSelf Operation = "delete_self"
)

// Channel is the entry point an account is created through.
type Channel string

const (
	ChannelSignup           Channel = "signup"
	ChannelAdminCreation    Channel = "admin_creation"
	ChannelEmployeeCreation Channel = "employee_creation"
)
