// Package handling registers handling events against booked cargoes.
package handling

import (
	"context"
	"log/slog"
	"time"

	"cargo/internal/core/application/usecases"
	"cargo/internal/core/application/validator"
	"cargo/internal/core/domain/model/cargo"
	domain "cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

type UseCase struct {
	presenter ports.HandlingPresenter
	validator *validator.Validator
	gateways  ports.PersistenceGatewayFactory
	logger    *slog.Logger
	now       usecases.Clock
}

func NewUseCase(
	presenter ports.HandlingPresenter,
	v *validator.Validator,
	gateways ports.PersistenceGatewayFactory,
	logger *slog.Logger,
	clock usecases.Clock,
) *UseCase {
	return &UseCase{
		presenter: presenter,
		validator: v,
		gateways:  gateways,
		logger:    logger.With("component", "handling"),
		now:       clock,
	}
}

// RecordHandlingEvent registers that a cargo was handled at a location. The
// registration time is the current instant; the cargo's delivery is not changed.
func (u *UseCase) RecordHandlingEvent(
	ctx context.Context,
	trackingID string,
	unLocode string,
	eventType string,
	completedAt time.Time,
) {
	defer usecases.Recover(ctx, u.presenter)

	id, code, typ, err := parseInput(trackingID, unLocode, eventType, completedAt)
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "record handling event", err)
		return
	}

	gw := u.gateways.Create()

	var recorded domain.HandlingEvent
	err = usecases.InTransaction(ctx, gw, func() error {
		c, err := gw.ObtainCargoByTrackingID(ctx, id)
		if err != nil {
			return err
		}
		if _, err = validator.One(u.validator, c); err != nil {
			return err
		}

		l, err := gw.ObtainLocationByUnLocode(ctx, code)
		if err != nil {
			return err
		}
		if _, err = validator.One(u.validator, l); err != nil {
			return err
		}

		eventID, err := gw.NextEventID(ctx)
		if err != nil {
			return err
		}
		if eventID, err = validator.One(u.validator, eventID); err != nil {
			return err
		}

		event, err := domain.NewHandlingEvent(eventID, id, typ, code, completedAt, u.now())
		if err != nil {
			return err
		}
		if event, err = validator.One(u.validator, event); err != nil {
			return err
		}

		if err = gw.RecordHandlingEvent(ctx, event); err != nil {
			return err
		}

		recorded = event
		return nil
	})
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "record handling event", err)
		return
	}

	u.logger.InfoContext(ctx, "handling event recorded",
		"tracking_id", id.String(), "event_type", typ.String(), "location", code.String())
	u.presenter.PresentResultOfRecordedHandlingEvent(ctx, recorded)
}

func parseInput(
	trackingID, unLocode, eventType string,
	completedAt time.Time,
) (cargo.TrackingID, kernel.UnLocode, domain.EventType, error) {
	if completedAt.IsZero() {
		return cargo.TrackingID{}, kernel.UnLocode{}, 0, errs.NewInvalidInputSpecificationError("completion time")
	}

	id, err := cargo.ParseTrackingID(trackingID)
	if err != nil {
		return cargo.TrackingID{}, kernel.UnLocode{}, 0, err
	}

	code, err := kernel.NewUnLocode(unLocode)
	if err != nil {
		return cargo.TrackingID{}, kernel.UnLocode{}, 0, errs.NewInvalidInputSpecificationErrorWithCause("location", err)
	}

	typ, err := domain.ParseEventType(eventType)
	if err != nil {
		return cargo.TrackingID{}, kernel.UnLocode{}, 0, err
	}

	return id, code, typ, nil
}
