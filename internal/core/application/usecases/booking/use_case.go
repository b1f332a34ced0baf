// Package booking books new cargoes and cancels bookings that have not been
// handled yet.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cargo/internal/core/application/usecases"
	"cargo/internal/core/application/validator"
	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// UseCase orchestrates booking operations. Every outcome goes to the presenter;
// no method returns a value.
//
// Example:
//
//	uc := booking.NewUseCase(presenter, validator.New(), gateways, logger, usecases.SystemClock)
//	uc.BookCargo(ctx, "USNYC", "AUMEL", deadline)
type UseCase struct {
	presenter ports.BookingPresenter
	validator *validator.Validator
	gateways  ports.PersistenceGatewayFactory
	logger    *slog.Logger
	now       usecases.Clock
}

func NewUseCase(
	presenter ports.BookingPresenter,
	v *validator.Validator,
	gateways ports.PersistenceGatewayFactory,
	logger *slog.Logger,
	clock usecases.Clock,
) *UseCase {
	return &UseCase{
		presenter: presenter,
		validator: v,
		gateways:  gateways,
		logger:    logger.With("component", "booking"),
		now:       clock,
	}
}

// PrepareNewCargoBooking presents the locations a cargo can be booked between.
// At least one location must be registered.
func (u *UseCase) PrepareNewCargoBooking(ctx context.Context) {
	defer usecases.Recover(ctx, u.presenter)

	gw := u.gateways.Create()

	locations, err := gw.AllLocations(ctx)
	if err == nil {
		locations, err = validator.NonEmpty(u.validator, locations)
	}
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "prepare new cargo booking", err)
		return
	}

	u.presenter.PresentNewCargoBookingView(ctx, locations)
}

// BookCargo books a cargo from originCode to destinationCode, due by deadline.
// A zero deadline means no deadline was given and is rejected before any
// gateway call. All writes happen in one transaction.
func (u *UseCase) BookCargo(ctx context.Context, originCode, destinationCode string, deadline time.Time) {
	defer usecases.Recover(ctx, u.presenter)

	if deadline.IsZero() {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "book cargo",
			cargo.NewInvalidDestinationSpecificationError("arrival deadline must not be null"))
		return
	}

	gw := u.gateways.Create()

	var trackingID cargo.TrackingID
	err := usecases.InTransaction(ctx, gw, func() error {
		origin, err := u.obtainLocation(ctx, gw, "origin", originCode)
		if err != nil {
			return err
		}

		destination, err := u.obtainLocation(ctx, gw, "destination", destinationCode)
		if err != nil {
			return err
		}

		id, err := gw.NextTrackingID(ctx)
		if err != nil {
			return err
		}
		if id, err = validator.One(u.validator, id); err != nil {
			return err
		}

		routeSpecification, err := cargo.NewRouteSpecification(
			origin, destination, kernel.InDefaultZone(deadline), u.now(),
		)
		if err != nil {
			return err
		}

		c, err := cargo.NewCargo(id, origin, cargo.NewDelivery(), routeSpecification)
		if err != nil {
			return err
		}
		if c, err = validator.One(u.validator, c); err != nil {
			return err
		}

		if _, err = gw.SaveCargo(ctx, c); err != nil {
			return err
		}

		trackingID = id
		return nil
	})
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "book cargo", err)
		return
	}

	u.logger.InfoContext(ctx, "cargo booked",
		"tracking_id", trackingID.String(), "origin", originCode, "destination", destinationCode)
	u.presenter.PresentResultOfNewCargoBooking(ctx, trackingID)
}

// CancelBooking deletes a cargo that is still NOT_RECEIVED and has no recorded
// handling events.
func (u *UseCase) CancelBooking(ctx context.Context, trackingID string) {
	defer usecases.Recover(ctx, u.presenter)

	id, err := cargo.ParseTrackingID(trackingID)
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "cancel booking", err)
		return
	}

	gw := u.gateways.Create()

	err = usecases.InTransaction(ctx, gw, func() error {
		c, err := gw.ObtainCargoByTrackingID(ctx, id)
		if err != nil {
			return err
		}
		if c, err = validator.One(u.validator, c); err != nil {
			return err
		}

		if status := c.Delivery().TransportStatus(); status != cargo.NotReceived {
			return errs.NewValueIsInvalidErrorWithCause(
				"transport status",
				fmt.Errorf("cargo %s is %s, only %s bookings can be cancelled", id, status, cargo.NotReceived),
			)
		}

		history, err := gw.HandlingHistory(ctx, id)
		if err != nil {
			return err
		}
		if n := len(history.Events()); n > 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"handling history",
				fmt.Errorf("cargo %s has %d handling events", id, n),
			)
		}

		return gw.DeleteCargo(ctx, id)
	})
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "cancel booking", err)
		return
	}

	u.logger.InfoContext(ctx, "booking cancelled", "tracking_id", id.String())
	u.presenter.PresentResultOfCancelledBooking(ctx, id)
}

func (u *UseCase) obtainLocation(
	ctx context.Context,
	gw ports.PersistenceGateway,
	role string,
	code string,
) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		return location.Location{}, errs.NewInvalidInputSpecificationErrorWithCause(role, err)
	}

	l, err := gw.ObtainLocationByUnLocode(ctx, unLocode)
	if err != nil {
		return location.Location{}, err
	}

	return validator.One(u.validator, l)
}
