package actor

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleSponsor   Role = "sponsor"
	RoleOrganizer Role = "organizer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSponsor, RoleOrganizer:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the capability token threaded explicitly into every mutating
// lifecycle operation. It is never read from ambient context.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func New(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

// CanManageInvoices gates create/cancel/recreate and payment recording.
func (a Actor) CanManageInvoices() bool {
	return a.Role == RoleOrganizer
}

// CanResolveRequests gates the batched change-request decisions.
func (a Actor) CanResolveRequests() bool {
	return a.Role == RoleOrganizer || a.Role == RoleSponsor
}
