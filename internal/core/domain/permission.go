package domain

import "errors"

// Permission names a single action a role may or may not perform.
type Permission string

const (
	PermCreate      Permission = "create"
	PermRead        Permission = "read"
	PermUpdate      Permission = "update"
	PermDelete      Permission = "delete"
	PermManageUsers Permission = "manage_users"
)

var ErrForbidden = errors.New("access forbidden")

// rolePermissions is the authoritative role → permission table.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin:   permSet(PermCreate, PermRead, PermUpdate, PermDelete, PermManageUsers),
	RoleManager: permSet(PermCreate, PermRead, PermUpdate, PermDelete),
	RoleUser:    permSet(PermCreate, PermRead, PermUpdate),
	RoleViewer:  permSet(PermRead),
}

func permSet(perms ...Permission) map[Permission]struct{} {
	m := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		m[p] = struct{}{}
	}
	return m
}

// RoleAllows reports whether role may perform perm.
// Unknown roles are denied everything (fail closed).
func RoleAllows(role Role, perm Permission) bool {
	allowed, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = allowed[perm]
	return ok
}
