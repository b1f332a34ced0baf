package ports

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/domain/model/report"
)

// Presenters are the terminal sink of a use-case invocation. They never return
// an error: whatever they fail to render is their own concern.
type (
	// ErrorPresenter receives every failure, whatever the use case.
	ErrorPresenter interface {
		PresentError(ctx context.Context, err error)
	}

	BookingPresenter interface {
		ErrorPresenter
		PresentNewCargoBookingView(ctx context.Context, locations []location.Location)
		PresentResultOfNewCargoBooking(ctx context.Context, trackingID cargo.TrackingID)
		PresentResultOfCancelledBooking(ctx context.Context, trackingID cargo.TrackingID)
	}

	HandlingPresenter interface {
		ErrorPresenter
		PresentResultOfRecordedHandlingEvent(ctx context.Context, event handling.HandlingEvent)
	}

	TrackingPresenter interface {
		ErrorPresenter
		PresentCargoTrackingView(ctx context.Context, c *cargo.Cargo, history handling.HandlingHistory)
	}

	ReportPresenter interface {
		ErrorPresenter
		PresentExpectedArrivals(
			ctx context.Context,
			arrivals []report.ExpectedArrivals,
			regions map[kernel.UnLocode]location.Region,
		)
		PresentCargoList(ctx context.Context, cargoes []cargo.CargoInfo)
	}

	LocationsPresenter interface {
		ErrorPresenter
		PresentRegisteredLocation(ctx context.Context, l location.Location, created bool)
	}
)
