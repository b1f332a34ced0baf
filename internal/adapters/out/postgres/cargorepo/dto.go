// Package cargorepo maps booked cargoes to the cargoes table and computes the
// read-only projections over it.
package cargorepo

import (
	"time"

	"cargo/internal/adapters/out/postgres/locationrepo"
	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CargoDTO is the row of a booked cargo. Origin and Destination reference the
// locations table and are only populated when preloaded.
type CargoDTO struct {
	TrackingID          uuid.UUID                `gorm:"type:uuid;primaryKey"`
	OriginUnLocode      string                   `gorm:"column:origin_unlocode;type:varchar(5);not null"`
	DestinationUnLocode string                   `gorm:"column:destination_unlocode;type:varchar(5);not null;index"`
	ArrivalDeadline     time.Time                `gorm:"not null"`
	TransportStatus     int                      `gorm:"type:smallint;not null"`
	Origin              locationrepo.LocationDTO `gorm:"foreignKey:OriginUnLocode;references:UnLocode;constraint:OnDelete:RESTRICT"`
	Destination         locationrepo.LocationDTO `gorm:"foreignKey:DestinationUnLocode;references:UnLocode;constraint:OnDelete:RESTRICT"`
}

// TableName overrides GORM's default "cargo_dtos".
func (CargoDTO) TableName() string {
	return "cargoes"
}

// expectedArrivalsRow is one row of the expected arrivals projection.
type expectedArrivalsRow struct {
	City            string
	NumberOfCargoes int
}

func fromDomain(c *cargo.Cargo) CargoDTO {
	spec := c.RouteSpecification()
	return CargoDTO{
		TrackingID:          c.TrackingID().UUID().Bytes(),
		OriginUnLocode:      spec.Origin().UnLocode().String(),
		DestinationUnLocode: spec.Destination().UnLocode().String(),
		ArrivalDeadline:     spec.ArrivalDeadline(),
		TransportStatus:     int(c.Delivery().TransportStatus()),
	}
}

// toDomain rebuilds a cargo from a row with both locations preloaded.
func toDomain(dto CargoDTO) (*cargo.Cargo, error) {
	id, err := trackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	origin, err := locationrepo.ToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := locationrepo.ToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	spec, err := cargo.RestoreRouteSpecification(origin, destination, kernel.InDefaultZone(dto.ArrivalDeadline))
	if err != nil {
		return nil, err
	}
	delivery, err := cargo.RestoreDelivery(cargo.TransportStatus(dto.TransportStatus))
	if err != nil {
		return nil, err
	}

	return cargo.RestoreCargo(id, origin, delivery, spec)
}

// toInfo converts a row to the listing projection without touching its locations.
func toInfo(dto CargoDTO) (cargo.CargoInfo, error) {
	id, err := trackingID(dto.TrackingID)
	if err != nil {
		return cargo.CargoInfo{}, err
	}
	origin, err := kernel.NewUnLocode(dto.OriginUnLocode)
	if err != nil {
		return cargo.CargoInfo{}, err
	}
	destination, err := kernel.NewUnLocode(dto.DestinationUnLocode)
	if err != nil {
		return cargo.CargoInfo{}, err
	}

	return cargo.CargoInfo{
		TrackingID:      id,
		Origin:          origin,
		Destination:     destination,
		ArrivalDeadline: kernel.InDefaultZone(dto.ArrivalDeadline),
		TransportStatus: cargo.TransportStatus(dto.TransportStatus),
	}, nil
}

func trackingID(raw uuid.UUID) (cargo.TrackingID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return cargo.TrackingID{}, err
	}
	return cargo.NewTrackingID(id)
}
