package cargo

import (
	"errors"
	"fmt"

	"cargo/internal/core/domain/model/location"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrCargoIsNotConstructed is returned when validating a Cargo that was not built
// by NewCargo or RestoreCargo.
var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo or RestoreCargo constructor")

// Cargo is the aggregate root of a booking. It owns its RouteSpecification and
// Delivery; everything outside the aggregate refers to it by TrackingID.
//
// Invariants:
//   - the tracking id is set at creation and never changes
//   - the route specification is valid
//   - the origin is the route specification's origin
//   - the delivery is valid, and NOT_RECEIVED for a new booking
type Cargo struct {
	trackingID         TrackingID
	origin             location.Location
	routeSpecification RouteSpecification
	delivery           Delivery
	guard              guard.ConstructorGuard
}

// NewCargo books a new cargo. The delivery must be in its initial status.
//
// Example:
//
//	c, err := cargo.NewCargo(trackingID, origin, cargo.NewDelivery(), routeSpecification)
func NewCargo(
	trackingID TrackingID,
	origin location.Location,
	delivery Delivery,
	routeSpecification RouteSpecification,
) (*Cargo, error) {
	if err := delivery.Validate(); err != nil {
		return nil, err
	}
	if err := delivery.TransportStatus().ValidateInitial(); err != nil {
		return nil, err
	}
	return RestoreCargo(trackingID, origin, delivery, routeSpecification)
}

// RestoreCargo rebuilds a cargo read from storage, in any valid transport status.
func RestoreCargo(
	trackingID TrackingID,
	origin location.Location,
	delivery Delivery,
	routeSpecification RouteSpecification,
) (*Cargo, error) {
	c := &Cargo{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setTrackingID(trackingID),
		c.setOrigin(origin),
		c.setRouteSpecification(routeSpecification),
		c.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	if err := c.validateOriginMatchesRoute(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate re-checks every invariant of the aggregate.
func (c *Cargo) Validate() error {
	if c == nil {
		return ErrCargoIsNotConstructed
	}
	if err := c.guard.Validate(ErrCargoIsNotConstructed); err != nil {
		return err
	}
	if err := errors.Join(
		c.trackingID.Validate(),
		c.origin.Validate(),
		c.routeSpecification.Validate(),
		c.delivery.Validate(),
	); err != nil {
		return err
	}
	return c.validateOriginMatchesRoute()
}

func (c *Cargo) TrackingID() TrackingID {
	return c.trackingID
}

func (c *Cargo) Origin() location.Location {
	return c.origin
}

func (c *Cargo) RouteSpecification() RouteSpecification {
	return c.routeSpecification
}

func (c *Cargo) Delivery() Delivery {
	return c.delivery
}

// IsEqual compares cargoes by tracking id.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.trackingID.IsEqual(other.trackingID)
}

func (c *Cargo) validateOriginMatchesRoute() error {
	if !c.origin.IsEqual(c.routeSpecification.Origin()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"origin",
			fmt.Errorf("cargo origin %s differs from route origin %s",
				c.origin.UnLocode(), c.routeSpecification.Origin().UnLocode()),
		)
	}
	return nil
}

func (c *Cargo) setTrackingID(id TrackingID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.trackingID = id
	return nil
}

func (c *Cargo) setOrigin(origin location.Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	c.origin = origin
	return nil
}

func (c *Cargo) setRouteSpecification(spec RouteSpecification) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	c.routeSpecification = spec
	return nil
}

func (c *Cargo) setDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	c.delivery = delivery
	return nil
}
