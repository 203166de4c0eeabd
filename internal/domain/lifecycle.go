package domain

// transitions allowed edges of the booking lifecycle
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether from -> to is an edge of the lifecycle
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AuthorizeTransition decides whether actor may move booking to target.
//
// Checks run in a fixed order:
//  1. the actor must be the booking's consumer or the service's provider (ErrActorNotRelated);
//  2. a consumer may only cancel, whatever the current status (ErrRoleNotPermitted);
//  3. terminal bookings never move (ErrTerminalStatus);
//  4. the edge must exist: confirm needs pending, complete needs confirmed (ErrInvalidTransition).
func AuthorizeTransition(actor Actor, booking *Booking, service *Service, target BookingStatus) error {
	if _, err := ParseBookingStatus(string(target)); err != nil {
		return err
	}

	isConsumer := actor.IsConsumerOwner(booking)
	isProvider := actor.IsProviderOwner(service)

	if !isConsumer && !isProvider {
		return ErrActorNotRelated
	}

	if isConsumer && target != StatusCancelled {
		return ErrRoleNotPermitted
	}

	if booking.IsTerminal() {
		return ErrTerminalStatus
	}

	if !CanTransition(booking.Status, target) {
		return ErrInvalidTransition
	}

	return nil
}
