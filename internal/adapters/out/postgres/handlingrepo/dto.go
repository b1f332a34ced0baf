// Package handlingrepo maps handling events to the handling_events table.
package handlingrepo

import (
	"time"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HandlingEventDTO is the row of one recorded handling event.
type HandlingEventDTO struct {
	EventID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID       uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType        int       `gorm:"type:smallint;not null"`
	LocationUnLocode string    `gorm:"column:location_unlocode;type:varchar(5);not null"`
	CompletedAt      time.Time `gorm:"not null"`
	RegisteredAt     time.Time `gorm:"not null"`
}

// TableName overrides GORM's default "handling_event_dtos".
func (HandlingEventDTO) TableName() string {
	return "handling_events"
}

func fromDomain(e handling.HandlingEvent) HandlingEventDTO {
	return HandlingEventDTO{
		EventID:          e.EventID().UUID().Bytes(),
		TrackingID:       e.TrackingID().UUID().Bytes(),
		EventType:        int(e.EventType()),
		LocationUnLocode: e.Location().String(),
		CompletedAt:      e.CompletedAt(),
		RegisteredAt:     e.RegisteredAt(),
	}
}

func toDomain(dto HandlingEventDTO) (handling.HandlingEvent, error) {
	rawEventID, err := kernel.UUIDFromBytes(dto.EventID[:])
	if err != nil {
		return handling.HandlingEvent{}, err
	}
	eventID, err := handling.NewEventID(rawEventID)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	rawTrackingID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return handling.HandlingEvent{}, err
	}
	trackingID, err := cargo.NewTrackingID(rawTrackingID)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	code, err := kernel.NewUnLocode(dto.LocationUnLocode)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	return handling.NewHandlingEvent(
		eventID,
		trackingID,
		handling.EventType(dto.EventType),
		code,
		dto.CompletedAt,
		dto.RegisteredAt,
	)
}
