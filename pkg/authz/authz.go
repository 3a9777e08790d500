// Package authz holds the single mutation policy of the service. The
// decision is a pure function of the acting user and the ownership of
// the target, so every handler shares exactly the same rules.
package authz

import (
	"github.com/atelier-lab/atelier/dao/model"
)

// Actor is the authenticated identity a request acts as.
type Actor struct {
	UserID uint
	Role   model.Role
}

// Ownership tells whether a resource belongs to a specific user. A
// resource without an owner is a legacy or globally shared record that
// any non-guest user may modify.
type Ownership struct {
	owned  bool
	userID uint
}

func Owned(userID uint) Ownership {
	return Ownership{owned: true, userID: userID}
}

func Unowned() Ownership {
	return Ownership{}
}

// OwnershipOf converts a nullable owner column into an Ownership value.
// This is the only place the nil case is interpreted.
func OwnershipOf(ownerID *uint) Ownership {
	if ownerID == nil {
		return Unowned()
	}
	return Owned(*ownerID)
}

// CanMutate reports whether the actor may modify or delete a resource
// with the given ownership. Reads are open to every authenticated actor
// and are not checked here.
func CanMutate(actor Actor, ownership Ownership) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return true
	case model.RoleGuest:
		return false
	case model.RoleUser:
		return !ownership.owned || ownership.userID == actor.UserID
	default:
		return false
	}
}

// CanUpload reports whether the actor may store new bytes, regardless of
// which resource they end up attached to.
func CanUpload(actor Actor) bool {
	return actor.Role == model.RoleAdmin || actor.Role == model.RoleUser
}
