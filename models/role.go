package models

// Role is the access level carried in the JWT and stored on the user record.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleStyler     Role = "styler"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStyler, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// CanManageStaff reports whether the role may create, edit or delete
// stylists and services. Authorization always happens server-side; clients
// may use this for UI gating only.
func CanManageStaff(r Role) bool {
	return r == RoleAdmin || r == RoleSuperadmin
}
