package domain

import "github.com/google/uuid"

// Service is a bookable offering published by a provider.
// The scheduling core only reads it.
type Service struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	Name       string
	IsActive   bool
}
