package mocks

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/domain/model/report"

	"github.com/stretchr/testify/mock"
)

// Presenter implements every presenter port.
type Presenter struct{ mock.Mock }

func (m *Presenter) PresentError(ctx context.Context, err error) {
	m.Called(ctx, err)
}

func (m *Presenter) PresentNewCargoBookingView(ctx context.Context, locations []location.Location) {
	m.Called(ctx, locations)
}

func (m *Presenter) PresentResultOfNewCargoBooking(ctx context.Context, trackingID cargo.TrackingID) {
	m.Called(ctx, trackingID)
}

func (m *Presenter) PresentResultOfCancelledBooking(ctx context.Context, trackingID cargo.TrackingID) {
	m.Called(ctx, trackingID)
}

func (m *Presenter) PresentResultOfRecordedHandlingEvent(ctx context.Context, event handling.HandlingEvent) {
	m.Called(ctx, event)
}

func (m *Presenter) PresentCargoTrackingView(ctx context.Context, c *cargo.Cargo, history handling.HandlingHistory) {
	m.Called(ctx, c, history)
}

func (m *Presenter) PresentExpectedArrivals(
	ctx context.Context,
	arrivals []report.ExpectedArrivals,
	regions map[kernel.UnLocode]location.Region,
) {
	m.Called(ctx, arrivals, regions)
}

func (m *Presenter) PresentCargoList(ctx context.Context, cargoes []cargo.CargoInfo) {
	m.Called(ctx, cargoes)
}

func (m *Presenter) PresentRegisteredLocation(ctx context.Context, l location.Location, created bool) {
	m.Called(ctx, l, created)
}

// ErrorWith matches an error argument satisfying errors.Is(err, target).
func ErrorWith(target error) any {
	return mock.MatchedBy(func(err error) bool {
		return errors.Is(err, target)
	})
}
