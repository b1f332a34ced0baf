package location

import "cargo/internal/core/domain/model/kernel"

// RegionsByUnLocode maps every distinct UnLocode in locations to its Region.
// When a code appears more than once the last occurrence wins.
func RegionsByUnLocode(locations []Location) map[kernel.UnLocode]Region {
	regions := make(map[kernel.UnLocode]Region, len(locations))
	for _, l := range locations {
		regions[l.UnLocode()] = l.Region()
	}
	return regions
}

// ByUnLocode maps every distinct UnLocode in locations to the location itself.
func ByUnLocode(locations []Location) map[kernel.UnLocode]Location {
	byCode := make(map[kernel.UnLocode]Location, len(locations))
	for _, l := range locations {
		byCode[l.UnLocode()] = l
	}
	return byCode
}
