// Package policy holds the single authorization rule applied to every
// mutation: admins may touch anything, everyone else only what they own.
package policy

import "lms/models"

// Actor is the identity derived from a verified bearer token.
type Actor struct {
	ID   uint
	Role string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// CanMutate reports whether the actor may update or delete a resource owned
// by ownerID. For courses the owner is the instructor; for enrollment status
// updates it is the course's instructor; for unenroll it is the enrolled
// student.
func CanMutate(actor Actor, ownerID uint) bool {
	return actor.IsAdmin() || actor.ID == ownerID
}
