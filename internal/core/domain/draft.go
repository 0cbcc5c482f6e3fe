package domain

// UserDraft is the full payload submitted when creating a user.
type UserDraft struct {
	Name   string
	Email  string
	Role   string
	Status Status
}

// UserPatch carries only the fields an edit changed. A nil field means
// "leave the original value as is".
type UserPatch struct {
	Name   *string
	Email  *string
	Role   *string
	Status *Status
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil && p.Status == nil
}

// Apply returns u with the patch's fields overridden. The id is preserved.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	return u
}

// RoleDraft is the full payload submitted when creating a role.
type RoleDraft struct {
	Name        string
	Permissions []string
}

// RolePatch carries only the fields an edit changed. A nil Permissions slice
// means "leave unchanged" (an empty set is never a valid target value).
type RolePatch struct {
	Name        *string
	Permissions []string
}

// IsEmpty reports whether the patch changes nothing.
func (p RolePatch) IsEmpty() bool {
	return p.Name == nil && p.Permissions == nil
}

// Apply returns r with the patch's fields overridden. The id is preserved.
func (p RolePatch) Apply(r Role) Role {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Permissions != nil {
		perms := make([]string, len(p.Permissions))
		copy(perms, p.Permissions)
		r.Permissions = perms
	}
	return r
}
