package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrRouteSpecificationIsNotConstructed is returned when validating a zero-value RouteSpecification.
var ErrRouteSpecificationIsNotConstructed = errs.NewValueIsRequiredError(
	"RouteSpecification must be created via NewRouteSpecification or RestoreRouteSpecification")

// RouteSpecification describes where a cargo goes and by when.
//
// Invariants:
//   - origin and destination are valid and differ
//   - the arrival deadline is set and expressed in kernel.DefaultZone
//   - at booking time, the deadline lies after the booking instant
type RouteSpecification struct { //nolint:recvcheck //using for validation
	origin          location.Location
	destination     location.Location
	arrivalDeadline time.Time
	guard           guard.ConstructorGuard
}

// NewRouteSpecification builds the specification of a new booking made at bookedAt.
//
// Example:
//
//	spec, err := cargo.NewRouteSpecification(nyc, melbourne, deadline, time.Now())
//	if errors.Is(err, errs.ErrInvalidInputSpecification) {
//	    // the deadline was missing
//	}
func NewRouteSpecification(
	origin location.Location,
	destination location.Location,
	arrivalDeadline time.Time,
	bookedAt time.Time,
) (RouteSpecification, error) {
	spec, err := RestoreRouteSpecification(origin, destination, arrivalDeadline)
	if err != nil {
		return RouteSpecification{}, err
	}

	if !spec.arrivalDeadline.After(bookedAt) {
		return RouteSpecification{}, errs.NewValueIsInvalidErrorWithCause(
			"arrival deadline",
			fmt.Errorf("%s is not after booking time %s",
				spec.arrivalDeadline.Format(time.RFC3339Nano), kernel.InDefaultZone(bookedAt).Format(time.RFC3339Nano)),
		)
	}

	return spec, nil
}

// RestoreRouteSpecification rebuilds a specification read from storage. The
// deadline is not compared with the current time: stored deadlines may have passed.
func RestoreRouteSpecification(
	origin location.Location,
	destination location.Location,
	arrivalDeadline time.Time,
) (RouteSpecification, error) {
	spec := RouteSpecification{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		spec.setOrigin(origin),
		spec.setDestination(destination),
		spec.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return RouteSpecification{}, err
	}

	if origin.IsEqual(destination) {
		return RouteSpecification{}, errs.NewValueIsInvalidErrorWithCause(
			"destination",
			fmt.Errorf("origin and destination are both %s", origin.UnLocode()),
		)
	}

	return spec, nil
}

func (r RouteSpecification) Validate() error {
	if err := r.guard.Validate(ErrRouteSpecificationIsNotConstructed); err != nil {
		return err
	}
	if err := errors.Join(r.origin.Validate(), r.destination.Validate()); err != nil {
		return err
	}
	if r.origin.IsEqual(r.destination) {
		return errs.NewValueIsInvalidErrorWithCause(
			"destination",
			fmt.Errorf("origin and destination are both %s", r.origin.UnLocode()),
		)
	}
	if r.arrivalDeadline.IsZero() {
		return NewInvalidDestinationSpecificationError("arrival deadline must not be null")
	}
	return nil
}

func (r RouteSpecification) Origin() location.Location {
	return r.origin
}

func (r RouteSpecification) Destination() location.Location {
	return r.destination
}

func (r RouteSpecification) ArrivalDeadline() time.Time {
	return r.arrivalDeadline
}

func (r *RouteSpecification) setOrigin(origin location.Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	r.origin = origin
	return nil
}

func (r *RouteSpecification) setDestination(destination location.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *RouteSpecification) setArrivalDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return NewInvalidDestinationSpecificationError("arrival deadline must not be null")
	}
	r.arrivalDeadline = kernel.InDefaultZone(deadline)
	return nil
}
