package domain

import "sort"

// RankRoles returns a new slice ordered by descending permission count, ties
// broken by ascending name. The sort is stable and the input is never
// modified; the store applies this ordering after every role mutation so the
// canonical collection order always reflects it.
func RankRoles(roles []Role) []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Permissions) != len(out[j].Permissions) {
			return len(out[i].Permissions) > len(out[j].Permissions)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// FilterUsersByStatus returns the users whose status equals the given value.
// StatusFilterAll (or an empty filter) is the identity.
func FilterUsersByStatus(users []User, status string) []User {
	if status == "" || status == StatusFilterAll {
		return users
	}
	var out []User
	for _, u := range users {
		if string(u.Status) == status {
			out = append(out, u)
		}
	}
	return out
}

// FilterRolesByPermissions keeps only the roles granting every required
// permission (superset semantics). An empty requirement is the identity.
func FilterRolesByPermissions(roles []Role, required []string) []Role {
	if len(required) == 0 {
		return roles
	}
	var out []Role
	for _, r := range roles {
		granted := true
		for _, p := range required {
			if !r.HasPermission(p) {
				granted = false
				break
			}
		}
		if granted {
			out = append(out, r)
		}
	}
	return out
}
