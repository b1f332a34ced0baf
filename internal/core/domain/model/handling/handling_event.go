package handling

import (
	"errors"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrHandlingEventIsNotConstructed is returned when validating a zero-value HandlingEvent.
var ErrHandlingEventIsNotConstructed = errs.NewValueIsRequiredError(
	"HandlingEvent must be created via NewHandlingEvent")

// HandlingEvent is a single, immutable handling of a cargo at a location.
//
// Invariants:
//   - completion time is set and not after the registration time
//   - both times are kept in kernel.DefaultZone
type HandlingEvent struct { //nolint:recvcheck //using for validation
	eventID      EventID
	trackingID   cargo.TrackingID
	eventType    EventType
	location     kernel.UnLocode
	completedAt  time.Time
	registeredAt time.Time
	guard        guard.ConstructorGuard
}

// NewHandlingEvent builds an event. It is also used to rebuild events read from storage.
//
// Example:
//
//	event, err := handling.NewHandlingEvent(eventID, trackingID, handling.Load,
//	    kernel.MustUnLocode("USNYC"), completedAt, time.Now())
func NewHandlingEvent(
	eventID EventID,
	trackingID cargo.TrackingID,
	eventType EventType,
	location kernel.UnLocode,
	completedAt time.Time,
	registeredAt time.Time,
) (HandlingEvent, error) {
	e := HandlingEvent{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		e.setEventID(eventID),
		e.setTrackingID(trackingID),
		e.setEventType(eventType),
		e.setLocation(location),
		e.setTimes(completedAt, registeredAt),
	); err != nil {
		return HandlingEvent{}, err
	}

	return e, nil
}

func (e HandlingEvent) Validate() error {
	if err := e.guard.Validate(ErrHandlingEventIsNotConstructed); err != nil {
		return err
	}
	return errors.Join(
		e.eventID.Validate(),
		e.trackingID.Validate(),
		e.eventType.Validate(),
		e.location.Validate(),
	)
}

func (e HandlingEvent) EventID() EventID {
	return e.eventID
}

func (e HandlingEvent) TrackingID() cargo.TrackingID {
	return e.trackingID
}

func (e HandlingEvent) EventType() EventType {
	return e.eventType
}

func (e HandlingEvent) Location() kernel.UnLocode {
	return e.location
}

func (e HandlingEvent) CompletedAt() time.Time {
	return e.completedAt
}

func (e HandlingEvent) RegisteredAt() time.Time {
	return e.registeredAt
}

func (e *HandlingEvent) setEventID(id EventID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.eventID = id
	return nil
}

func (e *HandlingEvent) setTrackingID(id cargo.TrackingID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.trackingID = id
	return nil
}

func (e *HandlingEvent) setEventType(t EventType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.eventType = t
	return nil
}

func (e *HandlingEvent) setLocation(location kernel.UnLocode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}

func (e *HandlingEvent) setTimes(completedAt, registeredAt time.Time) error {
	if completedAt.IsZero() {
		return errs.NewInvalidInputSpecificationError("completion time")
	}
	if registeredAt.IsZero() {
		return errs.NewValueIsRequiredError("registration time")
	}
	if completedAt.After(registeredAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"completion time",
			fmt.Errorf("%s is after registration time %s",
				completedAt.Format(time.RFC3339Nano), registeredAt.Format(time.RFC3339Nano)),
		)
	}
	e.completedAt = kernel.InDefaultZone(completedAt)
	e.registeredAt = kernel.InDefaultZone(registeredAt)
	return nil
}
