package location

import (
	"fmt"
	"strings"

	"cargo/internal/pkg/errs"
)

// Region classifies a location by continent.
type Region int

const (
	// UnknownRegion is the zero value and never valid.
	UnknownRegion Region = iota
	Africa
	Asia
	Europe
	NorthAmerica
	Oceania
	SouthAmerica
)

var regionNames = map[Region]string{
	Africa:       "AFRICA",
	Asia:         "ASIA",
	Europe:       "EUROPE",
	NorthAmerica: "NORTH_AMERICA",
	Oceania:      "OCEANIA",
	SouthAmerica: "SOUTH_AMERICA",
}

// ParseRegion accepts the names printed by String, case-insensitively.
func ParseRegion(name string) (Region, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for r, n := range regionNames {
		if n == normalized {
			return r, nil
		}
	}
	return UnknownRegion, errs.NewValueIsInvalidErrorWithCause(
		"region",
		fmt.Errorf("%q is not a known region", name),
	)
}

func (r Region) Validate() error {
	if _, ok := regionNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("region", fmt.Errorf("%d is not a valid region", r))
	}
	return nil
}

func (r Region) String() string {
	if n, ok := regionNames[r]; ok {
		return n
	}
	return "UNKNOWN"
}
