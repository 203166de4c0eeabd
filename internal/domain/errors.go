package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the scheduling core wraps exactly one of them,
// so callers can branch on the kind with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// Lifecycle and validation errors
var (
	ErrActorNotRelated   = fmt.Errorf("booking lifecycle: actor has no relation to the booking: %w", ErrUnauthorized)
	ErrRoleNotPermitted  = fmt.Errorf("booking lifecycle: role is not permitted to set this status: %w", ErrUnauthorized)
	ErrTerminalStatus    = fmt.Errorf("booking lifecycle: booking is in a terminal status: %w", ErrInvalidState)
	ErrInvalidTransition = fmt.Errorf("booking lifecycle: transition is not allowed from the current status: %w", ErrInvalidState)
	ErrUnknownStatus     = fmt.Errorf("booking lifecycle: unknown booking status: %w", ErrInvalidInput)
	ErrUnknownRole       = fmt.Errorf("actor: unknown role: %w", ErrInvalidInput)
	ErrUnknownDayOfWeek  = fmt.Errorf("availability: unknown day of week: %w", ErrInvalidInput)
	ErrInvalidTimeRange  = fmt.Errorf("start time must be before end time: %w", ErrInvalidInput)
)
