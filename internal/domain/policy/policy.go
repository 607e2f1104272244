// Package policy is the pure decision layer: given a caller, an action and a
// target, it answers yes or no. It has no side effects and touches no store;
// the application layer consults it before every mutation.
package policy

import (
	"guildesk/internal/domain/ticket"
	"guildesk/internal/shared/authorization"
)

// CanViewTicket reports whether the caller may read the ticket. Members only
// see their own tickets; reviewers and admins see everything.
func CanViewTicket(callerID uint, callerRole authorization.Role, t *ticket.Ticket) bool {
	if callerRole.IsStaff() {
		return true
	}
	return t.CreatorID() == callerID
}

// CanEditTicket reports whether the caller may modify ticket content. Closed
// tickets are frozen for everyone; open tickets may be edited by staff or by
// their creator.
func CanEditTicket(callerID uint, callerRole authorization.Role, t *ticket.Ticket) bool {
	if t.IsClosed() {
		return false
	}
	if callerRole.IsStaff() {
		return true
	}
	return t.CreatorID() == callerID
}

// CanCloseTicket reports whether the caller's role may close tickets.
func CanCloseTicket(callerRole authorization.Role) bool {
	return callerRole.IsStaff()
}

// CanDeleteTicket reports whether the caller's role may delete tickets.
func CanDeleteTicket(callerRole authorization.Role) bool {
	return callerRole.IsStaff()
}

// CanComment reports whether the ticket still accepts comments.
func CanComment(t *ticket.Ticket) bool {
	return !t.IsClosed()
}

// CanChangeUserRole reports whether the caller may change a user's role.
// Only admins change roles, and an admin's own role is never editable
// through this surface.
func CanChangeUserRole(callerRole, targetCurrentRole authorization.Role) bool {
	return callerRole.IsAdmin() && !targetCurrentRole.IsAdmin()
}

// CanEditUserFlags reports whether the caller may change the in-game flags
// (core, regear) of a user record.
func CanEditUserFlags(callerRole authorization.Role) bool {
	return callerRole.IsStaff()
}

// CanEditUserProfile reports whether the caller may change a user's pseudo
// or email.
func CanEditUserProfile(callerID uint, callerRole authorization.Role, targetID uint) bool {
	if callerID == targetID {
		return true
	}
	return callerRole.IsAdmin()
}
