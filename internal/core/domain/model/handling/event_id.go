package handling

import (
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// ErrEventIDIsNotConstructed is returned when validating a zero-value EventID.
var ErrEventIDIsNotConstructed = errs.NewValueIsRequiredError("event id")

// EventID identifies a handling event. Only the persistence gateway allocates them.
type EventID struct {
	id kernel.UUID
}

func NewEventID(id kernel.UUID) (EventID, error) {
	if err := id.Validate(); err != nil {
		return EventID{}, errs.NewValueIsRequiredErrorWithCause("event id", err)
	}
	return EventID{id: id}, nil
}

func (e EventID) Validate() error {
	if e.id.Validate() != nil {
		return ErrEventIDIsNotConstructed
	}
	return nil
}

func (e EventID) UUID() kernel.UUID {
	return e.id
}

func (e EventID) String() string {
	return e.id.String()
}

func (e EventID) IsEqual(other EventID) bool {
	return e.id.IsEqual(other.id)
}
