package cargo

import (
	"errors"

	"cargo/internal/pkg/errs"
)

// ErrInvalidDestinationSpecification marks a booking request whose destination
// part (destination or deadline) is missing before any domain object exists.
var ErrInvalidDestinationSpecification = errors.New("invalid destination specification")

// InvalidDestinationSpecificationError specialises errs.InvalidInputSpecificationError:
// errors.Is matches both ErrInvalidDestinationSpecification and errs.ErrInvalidInputSpecification.
type InvalidDestinationSpecificationError struct {
	Reason string
}

func NewInvalidDestinationSpecificationError(reason string) *InvalidDestinationSpecificationError {
	return &InvalidDestinationSpecificationError{Reason: reason}
}

func (e *InvalidDestinationSpecificationError) Error() string {
	return ErrInvalidDestinationSpecification.Error() + ": " + e.Reason
}

func (e *InvalidDestinationSpecificationError) Unwrap() []error {
	return []error{ErrInvalidDestinationSpecification, errs.ErrInvalidInputSpecification}
}
