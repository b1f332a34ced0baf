package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "cargo/internal/adapters/in/http"
	"cargo/internal/adapters/out/memory"
	"cargo/internal/core/application/usecases/booking"
	"cargo/internal/core/application/usecases/handling"
	"cargo/internal/core/application/usecases/locations"
	"cargo/internal/core/application/usecases/report"
	"cargo/internal/core/application/usecases/tracking"
	"cargo/internal/core/application/validator"
	"cargo/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

type useCases struct {
	validator *validator.Validator
	gateways  ports.PersistenceGatewayFactory
	logger    *slog.Logger
}

func (u useCases) clock() time.Time { return now }

func (u useCases) CreateBookingUseCase(p ports.BookingPresenter) *booking.UseCase {
	return booking.NewUseCase(p, u.validator, u.gateways, u.logger, u.clock)
}

func (u useCases) CreateHandlingUseCase(p ports.HandlingPresenter) *handling.UseCase {
	return handling.NewUseCase(p, u.validator, u.gateways, u.logger, u.clock)
}

func (u useCases) CreateTrackingUseCase(p ports.TrackingPresenter) *tracking.UseCase {
	return tracking.NewUseCase(p, u.validator, u.gateways, u.logger)
}

func (u useCases) CreateReportUseCase(p ports.ReportPresenter) *report.UseCase {
	return report.NewUseCase(p, u.validator, u.gateways, u.logger)
}

func (u useCases) CreateLocationsUseCase(p ports.LocationsPresenter) *locations.UseCase {
	return locations.NewUseCase(p, u.validator, u.gateways, u.logger)
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	v := validator.New()
	factory := useCases{
		validator: v,
		gateways:  memory.NewGatewayFactory(memory.NewStore()),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	e, err := httpadapter.NewRouter(testContext(t), httpadapter.NewServer(factory), v)
	require.NoError(t, err)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func registerLocations(t *testing.T, e *echo.Echo) {
	t.Helper()
	for code, body := range map[string]map[string]string{
		"USNYC": {"name": "New York", "region": "NORTH_AMERICA"},
		"AUMEL": {"name": "Melbourne", "region": "OCEANIA"},
	} {
		rec := do(t, e, http.MethodPut, "/api/v1/locations/"+code, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func book(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/api/v1/bookings", map[string]any{
		"origin":          "USNYC",
		"destination":     "AUMEL",
		"arrivalDeadline": "2030-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpadapter.BookingResultResponse](t, rec).TrackingID
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSwaggerServesOpenAPIDocument(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/swagger/doc.json", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cargo booking")
	assert.Contains(t, rec.Body.String(), "/api/v1/bookings")
}

func TestRegisterLocation(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPut, "/api/v1/locations/sehel", map[string]string{"name": "Helsingborg", "region": "europe"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, httpadapter.LocationResponse{UnLocode: "SEHEL", Name: "Helsingborg", Region: "EUROPE"},
		decode[httpadapter.LocationResponse](t, rec))

	rec = do(t, e, http.MethodPut, "/api/v1/locations/SEHEL", map[string]string{"name": "Helsingborg Hamn", "region": "EUROPE"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Helsingborg Hamn", decode[httpadapter.LocationResponse](t, rec).Name)

	rec = do(t, e, http.MethodPut, "/api/v1/locations/SE-HEL", map[string]string{"name": "Helsingborg", "region": "EUROPE"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", decode[httpadapter.ErrorResponse](t, rec).Kind)
}

func TestPrepareNewCargoBooking(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/api/v1/bookings/new", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, "no locations registered yet")
	assert.Equal(t, "validation", decode[httpadapter.ErrorResponse](t, rec).Kind)

	registerLocations(t, e)
	rec = do(t, e, http.MethodGet, "/api/v1/bookings/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[httpadapter.BookingViewResponse](t, rec)
	require.Len(t, view.Locations, 2)
	assert.Equal(t, "AUMEL", view.Locations[0].UnLocode)
	assert.Equal(t, "USNYC", view.Locations[1].UnLocode)
}

func TestBookCargo(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
		wantKind string
	}{
		{
			name:     "origin equals destination",
			body:     map[string]any{"origin": "USNYC", "destination": "USNYC", "arrivalDeadline": "2030-01-01T00:00:00Z"},
			wantCode: http.StatusUnprocessableEntity,
			wantKind: "validation",
		},
		{
			name:     "null deadline",
			body:     map[string]any{"origin": "USNYC", "destination": "AUMEL", "arrivalDeadline": nil},
			wantCode: http.StatusBadRequest,
			wantKind: "invalid_input",
		},
		{
			name:     "deadline in the past",
			body:     map[string]any{"origin": "USNYC", "destination": "AUMEL", "arrivalDeadline": "2020-01-01T00:00:00Z"},
			wantCode: http.StatusUnprocessableEntity,
			wantKind: "validation",
		},
		{
			name:     "unknown location",
			body:     map[string]any{"origin": "USNYC", "destination": "PELIM", "arrivalDeadline": "2030-01-01T00:00:00Z"},
			wantCode: http.StatusNotFound,
			wantKind: "not_found",
		},
		{
			name:     "missing origin",
			body:     map[string]any{"destination": "AUMEL", "arrivalDeadline": "2030-01-01T00:00:00Z"},
			wantCode: http.StatusBadRequest,
			wantKind: "invalid_input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestRouter(t)
			registerLocations(t, e)

			rec := do(t, e, http.MethodPost, "/api/v1/bookings", tt.body)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			resp := decode[httpadapter.ErrorResponse](t, rec)
			assert.Equal(t, tt.wantKind, resp.Kind)
			assert.Equal(t, tt.wantCode, resp.Code)

			list := do(t, e, http.MethodGet, "/api/v1/cargoes", nil)
			assert.Empty(t, decode[[]httpadapter.CargoSummaryResponse](t, list))
		})
	}
}

func TestBookTrackAndReport(t *testing.T) {
	e := newTestRouter(t)
	registerLocations(t, e)
	trackingID := book(t, e)

	rec := do(t, e, http.MethodGet, "/api/v1/cargoes/"+trackingID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[httpadapter.TrackingViewResponse](t, rec)
	assert.Equal(t, trackingID, view.TrackingID)
	assert.Equal(t, "USNYC", view.Origin.UnLocode)
	assert.Equal(t, "AUMEL", view.Destination.UnLocode)
	assert.Equal(t, "NOT_RECEIVED", view.TransportStatus)
	assert.True(t, view.ArrivalDeadline.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, view.HandlingEvents)

	rec = do(t, e, http.MethodPost, "/api/v1/cargoes/"+trackingID+"/handling-events", map[string]string{
		"eventType":   "receive",
		"location":    "USNYC",
		"completedAt": "2026-10-18T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	event := decode[httpadapter.HandlingEventResponse](t, rec)
	assert.Equal(t, "RECEIVE", event.EventType)
	assert.True(t, event.RegisteredAt.Equal(now))

	rec = do(t, e, http.MethodGet, "/api/v1/cargoes/"+trackingID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[httpadapter.TrackingViewResponse](t, rec)
	require.Len(t, view.HandlingEvents, 1)
	assert.Equal(t, event.EventID, view.HandlingEvents[0].EventID)
	assert.Equal(t, "NOT_RECEIVED", view.TransportStatus, "handling does not derive the status")

	rec = do(t, e, http.MethodGet, "/api/v1/cargoes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]httpadapter.CargoSummaryResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, trackingID, list[0].TrackingID)

	rec = do(t, e, http.MethodGet, "/api/v1/reports/expected-arrivals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		[]httpadapter.ExpectedArrivalsResponse{{City: "AUMEL", Region: "OCEANIA", NumberOfCargoes: 1}},
		decode[[]httpadapter.ExpectedArrivalsResponse](t, rec),
	)

	rec = do(t, e, http.MethodDelete, "/api/v1/bookings/"+trackingID, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "handled cargo cannot be cancelled")
}

func TestCancelBooking(t *testing.T) {
	e := newTestRouter(t)
	registerLocations(t, e)
	trackingID := book(t, e)

	rec := do(t, e, http.MethodDelete, "/api/v1/bookings/"+trackingID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/cargoes/"+trackingID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodDelete, "/api/v1/bookings/"+trackingID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestRejections(t *testing.T) {
	e := newTestRouter(t)
	registerLocations(t, e)

	t.Run("malformed tracking id", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/cargoes/not-a-uuid", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_input", decode[httpadapter.ErrorResponse](t, rec).Kind)
	})

	t.Run("handling event with unknown type", func(t *testing.T) {
		trackingID := book(t, e)

		rec := do(t, e, http.MethodPost, "/api/v1/cargoes/"+trackingID+"/handling-events", map[string]string{
			"eventType":   "TELEPORT",
			"location":    "USNYC",
			"completedAt": "2026-10-18T10:00:00Z",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	t.Run("body that is not JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("undocumented route", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/ships", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
