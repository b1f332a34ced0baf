// Package locationrepo maps registered locations to the locations table.
package locationrepo

import (
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
)

// LocationDTO is the row of a registered location, keyed by its UN/LOCODE.
type LocationDTO struct {
	UnLocode string `gorm:"column:unlocode;type:varchar(5);primaryKey"`
	Name     string `gorm:"type:varchar(255);not null"`
	Region   int    `gorm:"type:smallint;not null"`
}

// TableName overrides GORM's default "location_dtos".
func (LocationDTO) TableName() string {
	return "locations"
}

// FromDomain converts a location to its row.
func FromDomain(l location.Location) LocationDTO {
	return LocationDTO{
		UnLocode: l.UnLocode().String(),
		Name:     l.Name(),
		Region:   int(l.Region()),
	}
}

// ToDomain rebuilds a location from its row. Rows that no longer satisfy the
// location invariants are reported as errors rather than silently repaired.
func ToDomain(dto LocationDTO) (location.Location, error) {
	code, err := kernel.NewUnLocode(dto.UnLocode)
	if err != nil {
		return location.Location{}, err
	}
	return location.NewLocation(code, dto.Name, location.Region(dto.Region))
}
