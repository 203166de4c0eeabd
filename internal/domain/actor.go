package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ActorRole is the role issued to a user by the identity provider
type ActorRole string

const (
	RoleConsumer ActorRole = "CONSUMER"
	RoleProvider ActorRole = "PROVIDER"
)

// ParseActorRole parses a role name, case-insensitive
func ParseActorRole(s string) (ActorRole, error) {
	switch role := ActorRole(strings.ToUpper(strings.TrimSpace(s))); role {
	case RoleConsumer, RoleProvider:
		return role, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Actor is the authenticated caller of an operation
type Actor struct {
	ID   uuid.UUID
	Role ActorRole
}

// IsConsumerOwner reports whether the actor is the consumer who created the booking
func (a Actor) IsConsumerOwner(b *Booking) bool {
	return a.Role == RoleConsumer && b.ConsumerID == a.ID
}

// IsProviderOwner reports whether the actor is the provider who owns the service
func (a Actor) IsProviderOwner(s *Service) bool {
	return a.Role == RoleProvider && s.ProviderID == a.ID
}
