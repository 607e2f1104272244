// Package authorization defines the user roles recognized by the service.
// Role values are stored and transported verbatim; they come from the guild's
// original member directory, hence the French wire values.
package authorization

type Role string

const (
	RoleMember   Role = "Membre"
	RoleReviewer Role = "Reviewer"
	RoleAdmin    Role = "Admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleMember || r == RoleReviewer || r == RoleAdmin
}

func (r Role) IsMember() bool {
	return r == RoleMember
}

func (r Role) IsReviewer() bool {
	return r == RoleReviewer
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role may triage tickets (close, delete,
// edit any open ticket).
func (r Role) IsStaff() bool {
	return r == RoleReviewer || r == RoleAdmin
}

// ParseRole parses s into a Role, falling back to RoleMember for any
// unrecognized value.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleMember
}
