// Package ports defines the boundaries between the use cases and the outer ring:
// the persistence gateway every use case reads and writes through, and the
// presenters that receive the outcome of each use case.
package ports

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/domain/model/report"
)

// PersistenceGatewayFactory creates a new PersistenceGateway for each use-case
// invocation, so concurrent invocations never share a transaction.
type PersistenceGatewayFactory interface {
	Create() PersistenceGateway
}

// TxManager controls the transactional scope of one invocation.
type TxManager interface {
	// Begin starts a transaction. Calling Begin on an open transaction is a no-op.
	Begin(ctx context.Context) error

	// Commit makes the writes of the current transaction visible.
	// Returns errs.ErrNoTransaction if Begin was not called.
	Commit(ctx context.Context) error

	// Rollback discards every write of the current transaction.
	// It is a no-op returning nil when no transaction is open.
	Rollback(ctx context.Context) error
}

// PersistenceGateway is the sole owner of durable state. Reads of an identified
// object fail with *errs.ObjectNotFoundError when it is absent; storage failures
// surface as *errs.PersistenceError naming the operation.
type PersistenceGateway interface {
	TxManager

	// NextTrackingID allocates a tracking id that never collides, even across
	// overlapping transactions.
	NextTrackingID(ctx context.Context) (cargo.TrackingID, error)

	// NextEventID allocates a handling event id with the same guarantees as NextTrackingID.
	NextEventID(ctx context.Context) (handling.EventID, error)

	// AllLocations returns every registered location ordered by UnLocode.
	AllLocations(ctx context.Context) ([]location.Location, error)

	ObtainLocationByUnLocode(ctx context.Context, code kernel.UnLocode) (location.Location, error)

	// SaveCargo persists c and returns the stored form read back with its
	// locations resolved.
	SaveCargo(ctx context.Context, c *cargo.Cargo) (*cargo.Cargo, error)

	ObtainCargoByTrackingID(ctx context.Context, id cargo.TrackingID) (*cargo.Cargo, error)

	// DeleteCargo removes the cargo and its handling history.
	DeleteCargo(ctx context.Context, id cargo.TrackingID) error

	// QueryForExpectedArrivals counts cargoes per destination. Side-effect free.
	QueryForExpectedArrivals(ctx context.Context) ([]report.ExpectedArrivals, error)

	// RecordHandlingEvent appends event to the history of its cargo, which must
	// exist. The cargo's delivery is left untouched.
	RecordHandlingEvent(ctx context.Context, event handling.HandlingEvent) error

	// HandlingHistory returns the ordered events of a cargo. A cargo without
	// events has an empty history; an unknown cargo is not found.
	HandlingHistory(ctx context.Context, id cargo.TrackingID) (handling.HandlingHistory, error)

	LocationExists(ctx context.Context, l location.Location) (bool, error)

	// SaveLocation inserts l or replaces the name and region of the location
	// with the same UnLocode.
	SaveLocation(ctx context.Context, l location.Location) (location.Location, error)

	// AllCargoes returns a listing projection of every cargo ordered by tracking id.
	AllCargoes(ctx context.Context) ([]cargo.CargoInfo, error)
}

// AllRegionsMap derives UnLocode → Region from a single AllLocations read.
func AllRegionsMap(ctx context.Context, gw PersistenceGateway) (map[kernel.UnLocode]location.Region, error) {
	locations, err := gw.AllLocations(ctx)
	if err != nil {
		return nil, err
	}
	return location.RegionsByUnLocode(locations), nil
}

// AllLocationsMap derives UnLocode → Location from a single AllLocations read.
func AllLocationsMap(ctx context.Context, gw PersistenceGateway) (map[kernel.UnLocode]location.Location, error) {
	locations, err := gw.AllLocations(ctx)
	if err != nil {
		return nil, err
	}
	return location.ByUnLocode(locations), nil
}
