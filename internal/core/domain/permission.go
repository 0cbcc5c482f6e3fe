package domain

// Permission identifiers recognised by the directory. The set is fixed for
// the life of the process; the order below is the canonical catalog order.
const (
	PermManageUsers    = "manage_users"
	PermManageRoles    = "manage_roles"
	PermCreateContent  = "create_content"
	PermEditContent    = "edit_content"
	PermDeleteContent  = "delete_content"
	PermApproveContent = "approve_content"
	PermViewContent    = "view_content"
	PermViewAnalytics  = "view_analytics"
	PermManageSettings = "manage_settings"
)

// PermissionCategory groups permissions for presentation. Groupings carry no
// validation weight.
type PermissionCategory struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// Catalog is the fixed, ordered permission catalog.
type Catalog struct {
	permissions []string
	categories  []PermissionCategory
	index       map[string]struct{}
}

// NewCatalog builds a catalog from an ordered permission list and its
// presentation groupings.
func NewCatalog(permissions []string, categories []PermissionCategory) *Catalog {
	c := &Catalog{
		permissions: permissions,
		categories:  categories,
		index:       make(map[string]struct{}, len(permissions)),
	}
	for _, p := range permissions {
		c.index[p] = struct{}{}
	}
	return c
}

// DefaultCatalog returns the catalog the directory ships with.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]string{
			PermManageUsers,
			PermManageRoles,
			PermCreateContent,
			PermEditContent,
			PermDeleteContent,
			PermApproveContent,
			PermViewContent,
			PermViewAnalytics,
			PermManageSettings,
		},
		[]PermissionCategory{
			{Name: "User Management", Permissions: []string{PermManageUsers, PermManageRoles}},
			{Name: "Content Management", Permissions: []string{PermCreateContent, PermEditContent, PermDeleteContent, PermApproveContent, PermViewContent}},
			{Name: "Analytics & Settings", Permissions: []string{PermViewAnalytics, PermManageSettings}},
		},
	)
}

// Permissions returns the ordered permission identifiers.
func (c *Catalog) Permissions() []string {
	out := make([]string, len(c.permissions))
	copy(out, c.permissions)
	return out
}

// Categories returns the presentation groupings.
func (c *Catalog) Categories() []PermissionCategory {
	out := make([]PermissionCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// Contains reports whether perm is part of the catalog.
func (c *Catalog) Contains(perm string) bool {
	_, ok := c.index[perm]
	return ok
}

// Size returns the number of permissions in the catalog.
func (c *Catalog) Size() int {
	return len(c.permissions)
}
