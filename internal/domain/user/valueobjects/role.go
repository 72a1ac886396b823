package valueobjects

import "fmt"

// Role is a user's position within a company. Roles double as notification
// audiences: a broadcast notification carries the role list it addresses.
type Role string

const (
	RoleOwner      Role = "owner"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleEngineer   Role = "engineer"
	RoleTechnician Role = "technician"
	RoleGuard      Role = "guard"
	RoleCustomer   Role = "customer"
	// RolePlatformAdmin is the operator of the platform itself, outside any
	// tenant. Only this role may offboard a company.
	RolePlatformAdmin Role = "platform_admin"
)

var validRoles = map[Role]bool{
	RoleOwner:         true,
	RoleAdmin:         true,
	RoleManager:       true,
	RoleEngineer:      true,
	RoleTechnician:    true,
	RoleGuard:         true,
	RoleCustomer:      true,
	RolePlatformAdmin: true,
}

// NewRole creates a Role from its name, rejecting unknown values.
func NewRole(name string) (Role, error) {
	role := Role(name)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", name)
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// IsScopeLimited reports whether users with this role only see data for the
// sites and plants assigned to them. Staff roles see the whole company.
func (r Role) IsScopeLimited() bool {
	return r == RoleGuard || r == RoleCustomer
}

// CanManageCompany reports whether the role may administer company-level
// settings and users.
func (r Role) CanManageCompany() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CompanyRoles returns every in-tenant role, the implied audience of a
// broadcast with no role list.
func CompanyRoles() []Role {
	return []Role{RoleOwner, RoleAdmin, RoleManager, RoleEngineer, RoleTechnician, RoleGuard, RoleCustomer}
}

// ParseRoles converts raw role names, rejecting unknown values.
func ParseRoles(names []string) ([]Role, bool) {
	if len(names) == 0 {
		return nil, true
	}
	roles := make([]Role, len(names))
	for i, name := range names {
		role := Role(name)
		if !role.IsValid() {
			return nil, false
		}
		roles[i] = role
	}
	return roles, true
}
