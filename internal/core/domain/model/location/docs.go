// Package location models the ports and terminals cargo moves between.
//
// A Location is identified by its UnLocode and carries a human-readable name and
// the Region it belongs to. Locations are immutable once loaded; whether a
// location exists is decided by the persistence gateway, never by the caller.
//
// RegionsByUnLocode and ByUnLocode derive lookup maps from a list of locations.
// They are pure functions over an already-fetched list and are recomputed on
// every call.
package location
