package cargo

import (
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// ErrTrackingIDIsNotConstructed is returned when validating a zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError("tracking id")

// TrackingID is the external identifier of a cargo. New ids come from the
// persistence gateway only; clients can refer to existing ids through ParseTrackingID.
type TrackingID struct {
	id kernel.UUID
}

// NewTrackingID wraps a generated identifier.
func NewTrackingID(id kernel.UUID) (TrackingID, error) {
	if err := id.Validate(); err != nil {
		return TrackingID{}, errs.NewValueIsRequiredErrorWithCause("tracking id", err)
	}
	return TrackingID{id: id}, nil
}

// ParseTrackingID reads a tracking id supplied by a client. Malformed input is an
// input specification error rather than a domain validation failure.
func ParseTrackingID(s string) (TrackingID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return TrackingID{}, errs.NewInvalidInputSpecificationErrorWithCause("tracking id", err)
	}
	return TrackingID{id: id}, nil
}

func (t TrackingID) Validate() error {
	if t.id.Validate() != nil {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}

func (t TrackingID) UUID() kernel.UUID {
	return t.id
}

func (t TrackingID) String() string {
	return t.id.String()
}

func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.id.IsEqual(other.id)
}
