package http

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the API under /api/v1, its
// OpenAPI document under /swagger/ and a health check. Requests to the API are
// validated against the document before they reach a handler.
func NewRouter(ctx context.Context, server *Server, v echo.Validator) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	router, err := newOpenAPIRouter(doc)
	if err != nil {
		return nil, err
	}
	if err := registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = v
	e.Use(middleware.Recover())

	e.GET("/health", healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", openAPIValidator(router))
	api.GET("/bookings/new", server.PrepareNewCargoBooking)
	api.POST("/bookings", server.BookCargo)
	api.DELETE("/bookings/:trackingId", server.CancelBooking)
	api.GET("/cargoes", server.ListCargoes)
	api.GET("/cargoes/:trackingId", server.TrackCargo)
	api.POST("/cargoes/:trackingId/handling-events", server.RecordHandlingEvent)
	api.GET("/reports/expected-arrivals", server.ExpectedArrivals)
	api.PUT("/locations/:unLocode", server.RegisterLocation)

	return e, nil
}
