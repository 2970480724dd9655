package domain

import "testing"

func TestRoleAllows_Table(t *testing.T) {
	cases := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleAdmin, PermCreate, true},
		{RoleAdmin, PermRead, true},
		{RoleAdmin, PermUpdate, true},
		{RoleAdmin, PermDelete, true},
		{RoleAdmin, PermManageUsers, true},

		{RoleManager, PermCreate, true},
		{RoleManager, PermRead, true},
		{RoleManager, PermUpdate, true},
		{RoleManager, PermDelete, true},
		{RoleManager, PermManageUsers, false},

		{RoleUser, PermCreate, true},
		{RoleUser, PermRead, true},
		{RoleUser, PermUpdate, true},
		{RoleUser, PermDelete, false},
		{RoleUser, PermManageUsers, false},

		{RoleViewer, PermCreate, false},
		{RoleViewer, PermRead, true},
		{RoleViewer, PermUpdate, false},
		{RoleViewer, PermDelete, false},
		{RoleViewer, PermManageUsers, false},
	}

	for _, tc := range cases {
		if got := RoleAllows(tc.role, tc.perm); got != tc.want {
			t.Errorf("RoleAllows(%s, %s) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestRoleAllows_UnknownRoleDeniesEverything(t *testing.T) {
	perms := []Permission{PermCreate, PermRead, PermUpdate, PermDelete, PermManageUsers}
	for _, role := range []Role{"", "root", "superadmin", "Viewer"} {
		for _, p := range perms {
			if RoleAllows(role, p) {
				t.Errorf("RoleAllows(%q, %s) = true, want false", role, p)
			}
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleUser, RoleViewer} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%s) = false", r)
		}
	}
	if ValidRole("guest") {
		t.Errorf("ValidRole(guest) = true, want false")
	}
}
