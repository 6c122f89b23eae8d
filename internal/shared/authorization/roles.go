// Package authorization defines user roles and the gin middleware that
// enforces them on protected routes.
package authorization

type UserRole string

const (
	RoleAdmin        UserRole = "Admin"
	RolePlanner      UserRole = "Planner"
	RoleTechnician   UserRole = "Technician"
	RoleSupportAgent UserRole = "SupportAgent"
)

var validRoles = map[UserRole]struct{}{
	RoleAdmin:        {},
	RolePlanner:      {},
	RoleTechnician:   {},
	RoleSupportAgent: {},
}

func (r UserRole) IsValid() bool {
	_, ok := validRoles[r]
	return ok
}

func (r UserRole) String() string {
	return string(r)
}

// CanManageAssets reports whether the role may register, assign, or retire
// equipment.
func (r UserRole) CanManageAssets() bool {
	return r == RoleAdmin || r == RolePlanner
}

// CanManageDeployments reports whether the role may create or progress
// deployment tasks.
func (r UserRole) CanManageDeployments() bool {
	return r == RoleAdmin || r == RolePlanner || r == RoleTechnician
}

// CanViewAudit reports whether the role may read the audit trail.
func (r UserRole) CanViewAudit() bool {
	return r == RoleAdmin
}

func ParseRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}

func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RolePlanner, RoleTechnician, RoleSupportAgent}
}
