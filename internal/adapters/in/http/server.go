package http

import (
	"net/http"
	"time"

	"cargo/internal/core/application/usecases/booking"
	"cargo/internal/core/application/usecases/handling"
	"cargo/internal/core/application/usecases/locations"
	"cargo/internal/core/application/usecases/report"
	"cargo/internal/core/application/usecases/tracking"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// UseCaseFactory builds a use case bound to the presenter of a single request.
type UseCaseFactory interface {
	CreateBookingUseCase(presenter ports.BookingPresenter) *booking.UseCase
	CreateHandlingUseCase(presenter ports.HandlingPresenter) *handling.UseCase
	CreateTrackingUseCase(presenter ports.TrackingPresenter) *tracking.UseCase
	CreateReportUseCase(presenter ports.ReportPresenter) *report.UseCase
	CreateLocationsUseCase(presenter ports.LocationsPresenter) *locations.UseCase
}

// Server translates HTTP requests into use-case invocations. Every handler
// creates a JSON presenter for its request and returns whatever the presenter
// recorded.
type Server struct {
	useCases UseCaseFactory
}

func NewServer(useCases UseCaseFactory) *Server {
	return &Server{useCases: useCases}
}

// PrepareNewCargoBooking handles GET /api/v1/bookings/new.
func (s *Server) PrepareNewCargoBooking(c echo.Context) error {
	p := newJSONPresenter(c)
	s.useCases.CreateBookingUseCase(p).PrepareNewCargoBooking(c.Request().Context())
	return p.result()
}

// BookCargo handles POST /api/v1/bookings. A missing or null arrivalDeadline
// reaches the use case as the zero time.
func (s *Server) BookCargo(c echo.Context) error {
	var req BookCargoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	var deadline time.Time
	if req.ArrivalDeadline != nil {
		deadline = *req.ArrivalDeadline
	}

	p := newJSONPresenter(c)
	s.useCases.CreateBookingUseCase(p).BookCargo(c.Request().Context(), req.Origin, req.Destination, deadline)
	return p.result()
}

// CancelBooking handles DELETE /api/v1/bookings/{trackingId}.
func (s *Server) CancelBooking(c echo.Context) error {
	trackingID, err := trackingIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	p := newJSONPresenter(c)
	s.useCases.CreateBookingUseCase(p).CancelBooking(c.Request().Context(), trackingID)
	return p.result()
}

// ListCargoes handles GET /api/v1/cargoes.
func (s *Server) ListCargoes(c echo.Context) error {
	p := newJSONPresenter(c)
	s.useCases.CreateReportUseCase(p).ListCargoes(c.Request().Context())
	return p.result()
}

// TrackCargo handles GET /api/v1/cargoes/{trackingId}.
func (s *Server) TrackCargo(c echo.Context) error {
	trackingID, err := trackingIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	p := newJSONPresenter(c)
	s.useCases.CreateTrackingUseCase(p).TrackCargo(c.Request().Context(), trackingID)
	return p.result()
}

// RecordHandlingEvent handles POST /api/v1/cargoes/{trackingId}/handling-events.
func (s *Server) RecordHandlingEvent(c echo.Context) error {
	trackingID, err := trackingIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	var req RecordHandlingEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	p := newJSONPresenter(c)
	s.useCases.CreateHandlingUseCase(p).RecordHandlingEvent(
		c.Request().Context(), trackingID, req.Location, req.EventType, req.CompletedAt,
	)
	return p.result()
}

// ExpectedArrivals handles GET /api/v1/reports/expected-arrivals.
func (s *Server) ExpectedArrivals(c echo.Context) error {
	p := newJSONPresenter(c)
	s.useCases.CreateReportUseCase(p).ExpectedArrivals(c.Request().Context())
	return p.result()
}

// RegisterLocation handles PUT /api/v1/locations/{unLocode}.
func (s *Server) RegisterLocation(c echo.Context) error {
	var unLocode string
	if err := runtime.BindStyledParameterWithOptions("simple", "unLocode", c.Param("unLocode"), &unLocode,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true}); err != nil {
		return writeError(c, errs.NewInvalidInputSpecificationErrorWithCause("location code", err))
	}

	var req RegisterLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	p := newJSONPresenter(c)
	s.useCases.CreateLocationsUseCase(p).RegisterLocation(c.Request().Context(), unLocode, req.Name, req.Region)
	return p.result()
}

// trackingIDParam binds the trackingId path parameter as a UUID.
func trackingIDParam(c echo.Context) (string, error) {
	var id openapi_types.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", "trackingId", c.Param("trackingId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true}); err != nil {
		return "", errs.NewInvalidInputSpecificationErrorWithCause("tracking id", err)
	}
	return id.String(), nil
}

// bindAndValidate decodes the JSON body into req and checks its struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewInvalidInputSpecificationErrorWithCause("request body", err)
	}
	if err := c.Validate(req); err != nil {
		return errs.NewInvalidInputSpecificationErrorWithCause("request body", err)
	}
	return nil
}

// writeError answers a request rejected before any use case ran.
func writeError(c echo.Context, err error) error {
	resp := newErrorResponse(err)
	return c.JSON(resp.Code, resp)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
