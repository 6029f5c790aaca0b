// client/scope.go
package client

import "github.com/BelskviK/Styler-sub001/models"

// ScopeKind selects which list endpoint a load will hit.
type ScopeKind string

const (
	ScopeCompany  ScopeKind = "company"
	ScopeStylist  ScopeKind = "stylist"
	ScopeCustomer ScopeKind = "customer"
)

// Scope is the subset of appointments a role is entitled to view.
type Scope struct {
	Kind ScopeKind
	ID   string
}

// ResolveScope maps a role/identity pair to exactly one scoped fetch.
// Admins see their company, stylers their own calendar. Every other role,
// including ones this client does not recognize, is scoped to its own
// customer id: least privilege, never a fallback to "all appointments".
func ResolveScope(role models.Role, ident Identity) (Scope, error) {
	if models.CanManageStaff(role) {
		if ident.CompanyID == "" {
			return Scope{}, &ScopeResolutionError{Reason: "identity has no company id"}
		}
		return Scope{Kind: ScopeCompany, ID: ident.CompanyID}, nil
	}

	if ident.ID == "" {
		return Scope{}, &ScopeResolutionError{Reason: "identity has no id"}
	}

	if role == models.RoleStyler {
		return Scope{Kind: ScopeStylist, ID: ident.ID}, nil
	}
	return Scope{Kind: ScopeCustomer, ID: ident.ID}, nil
}
