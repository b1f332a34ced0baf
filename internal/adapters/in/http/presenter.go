package http

import (
	"context"
	"net/http"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/domain/model/report"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// jsonPresenter renders the outcome of one use-case invocation as the JSON
// response of the request it was created for. It implements every presenter port.
type jsonPresenter struct {
	c       echo.Context
	written bool
	err     error
}

func newJSONPresenter(c echo.Context) *jsonPresenter {
	return &jsonPresenter{c: c}
}

// result is what the handler returns to echo once the use case is done.
func (p *jsonPresenter) result() error {
	if !p.written {
		return echo.NewHTTPError(http.StatusInternalServerError, "no response was presented")
	}
	return p.err
}

func (p *jsonPresenter) write(status int, body any) {
	p.written = true
	if body == nil {
		p.err = p.c.NoContent(status)
		return
	}
	p.err = p.c.JSON(status, body)
}

func (p *jsonPresenter) PresentError(_ context.Context, err error) {
	resp := newErrorResponse(err)
	p.write(resp.Code, resp)
}

func (p *jsonPresenter) PresentNewCargoBookingView(_ context.Context, locations []location.Location) {
	resp := BookingViewResponse{Locations: make([]LocationResponse, 0, len(locations))}
	for _, l := range locations {
		resp.Locations = append(resp.Locations, toLocationResponse(l))
	}
	p.write(http.StatusOK, resp)
}

func (p *jsonPresenter) PresentResultOfNewCargoBooking(_ context.Context, trackingID cargo.TrackingID) {
	p.write(http.StatusCreated, BookingResultResponse{TrackingID: trackingID.String()})
}

func (p *jsonPresenter) PresentResultOfCancelledBooking(_ context.Context, _ cargo.TrackingID) {
	p.write(http.StatusNoContent, nil)
}

func (p *jsonPresenter) PresentResultOfRecordedHandlingEvent(_ context.Context, event handling.HandlingEvent) {
	p.write(http.StatusCreated, toHandlingEventResponse(event))
}

func (p *jsonPresenter) PresentCargoTrackingView(
	_ context.Context, c *cargo.Cargo, history handling.HandlingHistory,
) {
	spec := c.RouteSpecification()
	events := history.Events()
	resp := TrackingViewResponse{
		TrackingID:      c.TrackingID().String(),
		Origin:          toLocationResponse(spec.Origin()),
		Destination:     toLocationResponse(spec.Destination()),
		ArrivalDeadline: spec.ArrivalDeadline(),
		TransportStatus: c.Delivery().TransportStatus().String(),
		HandlingEvents:  make([]HandlingEventResponse, 0, len(events)),
	}
	for _, e := range events {
		resp.HandlingEvents = append(resp.HandlingEvents, toHandlingEventResponse(e))
	}
	p.write(http.StatusOK, resp)
}

func (p *jsonPresenter) PresentExpectedArrivals(
	_ context.Context,
	arrivals []report.ExpectedArrivals,
	regions map[kernel.UnLocode]location.Region,
) {
	resp := make([]ExpectedArrivalsResponse, 0, len(arrivals))
	for _, a := range arrivals {
		resp = append(resp, ExpectedArrivalsResponse{
			City:            a.City.String(),
			Region:          regions[a.City].String(),
			NumberOfCargoes: a.NumberOfCargoes,
		})
	}
	p.write(http.StatusOK, resp)
}

func (p *jsonPresenter) PresentCargoList(_ context.Context, cargoes []cargo.CargoInfo) {
	resp := make([]CargoSummaryResponse, 0, len(cargoes))
	for _, info := range cargoes {
		resp = append(resp, CargoSummaryResponse{
			TrackingID:      info.TrackingID.String(),
			Origin:          info.Origin.String(),
			Destination:     info.Destination.String(),
			ArrivalDeadline: info.ArrivalDeadline,
			TransportStatus: info.TransportStatus.String(),
		})
	}
	p.write(http.StatusOK, resp)
}

func (p *jsonPresenter) PresentRegisteredLocation(_ context.Context, l location.Location, created bool) {
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	p.write(status, toLocationResponse(l))
}

func toLocationResponse(l location.Location) LocationResponse {
	return LocationResponse{
		UnLocode: l.UnLocode().String(),
		Name:     l.Name(),
		Region:   l.Region().String(),
	}
}

func toHandlingEventResponse(e handling.HandlingEvent) HandlingEventResponse {
	return HandlingEventResponse{
		EventID:      e.EventID().String(),
		TrackingID:   e.TrackingID().String(),
		EventType:    e.EventType().String(),
		Location:     e.Location().String(),
		CompletedAt:  e.CompletedAt(),
		RegisteredAt: e.RegisteredAt(),
	}
}

// newErrorResponse maps err to its status code. Storage and unexpected
// failures are reported without their details.
func newErrorResponse(err error) ErrorResponse {
	kind := errs.KindOf(err)
	resp := ErrorResponse{Kind: kind.String(), Message: err.Error()}

	switch kind {
	case errs.KindValidation:
		resp.Code = http.StatusUnprocessableEntity
	case errs.KindNotFound:
		resp.Code = http.StatusNotFound
	case errs.KindInvalidInput:
		resp.Code = http.StatusBadRequest
	case errs.KindPersistence:
		resp.Code = http.StatusInternalServerError
		resp.Message = "storage failure"
	default:
		resp.Code = http.StatusInternalServerError
		resp.Message = "unexpected failure"
	}

	return resp
}
