// Package postgres implements the persistence gateway on top of GORM. The
// production database is PostgreSQL; the same gateway runs on SQLite for local
// runs and tests.
//
// Each use-case invocation gets its own GormGateway from the factory. Between
// Begin and Commit or Rollback every repository call goes through the open
// transaction; outside of one, calls execute directly on the connection pool.
//
// Usage:
//
//	factory := NewGormGatewayFactory(db)
//	gw := factory.Create()
//
//	if err := gw.Begin(ctx); err != nil {
//	    return err
//	}
//	if _, err := gw.SaveCargo(ctx, c); err != nil {
//	    _ = gw.Rollback(ctx)
//	    return err
//	}
//	return gw.Commit(ctx)
package postgres

import (
	"context"

	"cargo/internal/adapters/out/postgres/cargorepo"
	"cargo/internal/adapters/out/postgres/handlingrepo"
	"cargo/internal/adapters/out/postgres/locationrepo"
	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/domain/model/report"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.PersistenceGateway = (*GormGateway)(nil)

// GormGatewayFactory creates gateways sharing one connection pool.
type GormGatewayFactory struct {
	db *gorm.DB
}

func NewGormGatewayFactory(db *gorm.DB) *GormGatewayFactory {
	return &GormGatewayFactory{db: db}
}

// Create returns a gateway with no open transaction.
func (f *GormGatewayFactory) Create() ports.PersistenceGateway {
	return &GormGateway{db: f.db}
}

// GormGateway is not safe for concurrent use; create one per invocation.
type GormGateway struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin on an open transaction does nothing.
func (g *GormGateway) Begin(ctx context.Context) error {
	if g.tx != nil {
		return nil
	}

	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewPersistenceError("begin transaction", tx.Error)
	}

	g.tx = tx
	return nil
}

func (g *GormGateway) Commit(_ context.Context) error {
	if g.tx == nil {
		return errs.ErrNoTransaction
	}

	err := g.tx.Commit().Error
	g.tx = nil
	if err != nil {
		return errs.NewPersistenceError("commit transaction", err)
	}
	return nil
}

// Rollback discards the open transaction. Without one it returns nil.
func (g *GormGateway) Rollback(_ context.Context) error {
	if g.tx == nil {
		return nil
	}

	err := g.tx.Rollback().Error
	g.tx = nil
	if err != nil {
		return errs.NewPersistenceError("rollback transaction", err)
	}
	return nil
}

func (g *GormGateway) NextTrackingID(_ context.Context) (cargo.TrackingID, error) {
	return cargo.NewTrackingID(kernel.NewUUID())
}

func (g *GormGateway) NextEventID(_ context.Context) (handling.EventID, error) {
	return handling.NewEventID(kernel.NewUUID())
}

func (g *GormGateway) AllLocations(ctx context.Context) ([]location.Location, error) {
	return g.locations().All(ctx)
}

func (g *GormGateway) ObtainLocationByUnLocode(ctx context.Context, code kernel.UnLocode) (location.Location, error) {
	return g.locations().Get(ctx, code)
}

func (g *GormGateway) SaveCargo(ctx context.Context, c *cargo.Cargo) (*cargo.Cargo, error) {
	return g.cargoes().Save(ctx, c)
}

func (g *GormGateway) ObtainCargoByTrackingID(ctx context.Context, id cargo.TrackingID) (*cargo.Cargo, error) {
	return g.cargoes().Get(ctx, id)
}

// DeleteCargo removes the handling history first so the cargo row is never
// left referenced by events.
func (g *GormGateway) DeleteCargo(ctx context.Context, id cargo.TrackingID) error {
	if err := g.events().DeleteAll(ctx, id); err != nil {
		return err
	}
	return g.cargoes().Delete(ctx, id)
}

func (g *GormGateway) QueryForExpectedArrivals(ctx context.Context) ([]report.ExpectedArrivals, error) {
	return g.cargoes().ExpectedArrivals(ctx)
}

func (g *GormGateway) RecordHandlingEvent(ctx context.Context, event handling.HandlingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if err := g.requireCargo(ctx, event.TrackingID()); err != nil {
		return err
	}
	return g.events().Add(ctx, event)
}

func (g *GormGateway) HandlingHistory(ctx context.Context, id cargo.TrackingID) (handling.HandlingHistory, error) {
	if err := g.requireCargo(ctx, id); err != nil {
		return handling.HandlingHistory{}, err
	}
	return g.events().History(ctx, id)
}

func (g *GormGateway) LocationExists(ctx context.Context, l location.Location) (bool, error) {
	return g.locations().Exists(ctx, l.UnLocode())
}

func (g *GormGateway) SaveLocation(ctx context.Context, l location.Location) (location.Location, error) {
	return g.locations().Save(ctx, l)
}

func (g *GormGateway) AllCargoes(ctx context.Context) ([]cargo.CargoInfo, error) {
	return g.cargoes().Infos(ctx)
}

func (g *GormGateway) requireCargo(ctx context.Context, id cargo.TrackingID) error {
	ok, err := g.cargoes().Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewObjectNotFoundError("cargo", id.String())
	}
	return nil
}

// conn returns the open transaction, or the pool when there is none.
func (g *GormGateway) conn() *gorm.DB {
	if g.tx != nil {
		return g.tx
	}
	return g.db
}

func (g *GormGateway) locations() *locationrepo.GormLocationRepository {
	return locationrepo.NewGormLocationRepository(g.conn())
}

func (g *GormGateway) cargoes() *cargorepo.GormCargoRepository {
	return cargorepo.NewGormCargoRepository(g.conn())
}

func (g *GormGateway) events() *handlingrepo.GormHandlingRepository {
	return handlingrepo.NewGormHandlingRepository(g.conn())
}
