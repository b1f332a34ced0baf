package http

import "time"

// Requests. Struct tags are checked by the echo validator after binding.
type (
	BookCargoRequest struct {
		Origin          string     `json:"origin" validate:"required"`
		Destination     string     `json:"destination" validate:"required"`
		ArrivalDeadline *time.Time `json:"arrivalDeadline"`
	}

	RecordHandlingEventRequest struct {
		EventType   string    `json:"eventType" validate:"required"`
		Location    string    `json:"location" validate:"required"`
		CompletedAt time.Time `json:"completedAt"`
	}

	RegisterLocationRequest struct {
		Name   string `json:"name" validate:"required"`
		Region string `json:"region" validate:"required"`
	}
)

// Responses.
type (
	LocationResponse struct {
		UnLocode string `json:"unLocode"`
		Name     string `json:"name"`
		Region   string `json:"region"`
	}

	BookingViewResponse struct {
		Locations []LocationResponse `json:"locations"`
	}

	BookingResultResponse struct {
		TrackingID string `json:"trackingId"`
	}

	CargoSummaryResponse struct {
		TrackingID      string    `json:"trackingId"`
		Origin          string    `json:"origin"`
		Destination     string    `json:"destination"`
		ArrivalDeadline time.Time `json:"arrivalDeadline"`
		TransportStatus string    `json:"transportStatus"`
	}

	HandlingEventResponse struct {
		EventID      string    `json:"eventId"`
		TrackingID   string    `json:"trackingId"`
		EventType    string    `json:"eventType"`
		Location     string    `json:"location"`
		CompletedAt  time.Time `json:"completedAt"`
		RegisteredAt time.Time `json:"registeredAt"`
	}

	TrackingViewResponse struct {
		TrackingID      string                  `json:"trackingId"`
		Origin          LocationResponse        `json:"origin"`
		Destination     LocationResponse        `json:"destination"`
		ArrivalDeadline time.Time               `json:"arrivalDeadline"`
		TransportStatus string                  `json:"transportStatus"`
		HandlingEvents  []HandlingEventResponse `json:"handlingEvents"`
	}

	ExpectedArrivalsResponse struct {
		City            string `json:"city"`
		Region          string `json:"region"`
		NumberOfCargoes int    `json:"numberOfCargoes"`
	}

	ErrorResponse struct {
		Code    int    `json:"code"`
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}
)
