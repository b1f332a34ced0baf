package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/domain/model/report"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

var _ ports.PersistenceGateway = (*Gateway)(nil)

// GatewayFactory creates gateways over one Store.
type GatewayFactory struct {
	store *Store
}

func NewGatewayFactory(store *Store) *GatewayFactory {
	return &GatewayFactory{store: store}
}

func (f *GatewayFactory) Create() ports.PersistenceGateway {
	return &Gateway{store: f.store}
}

// Gateway is used by a single use-case invocation and is not safe for
// concurrent use.
type Gateway struct {
	store *Store
	inTx  bool
	undo  []func()
}

func (g *Gateway) Begin(_ context.Context) error {
	if g.inTx {
		return nil
	}
	g.store.mu.Lock()
	g.inTx = true
	g.undo = nil
	return nil
}

func (g *Gateway) Commit(_ context.Context) error {
	if !g.inTx {
		return errs.ErrNoTransaction
	}
	g.undo = nil
	g.inTx = false
	g.store.mu.Unlock()
	return nil
}

func (g *Gateway) Rollback(_ context.Context) error {
	if !g.inTx {
		return nil
	}
	for i := len(g.undo) - 1; i >= 0; i-- {
		g.undo[i]()
	}
	g.undo = nil
	g.inTx = false
	g.store.mu.Unlock()
	return nil
}

func (g *Gateway) NextTrackingID(_ context.Context) (cargo.TrackingID, error) {
	return cargo.NewTrackingID(kernel.NewUUID())
}

func (g *Gateway) NextEventID(_ context.Context) (handling.EventID, error) {
	return handling.NewEventID(kernel.NewUUID())
}

func (g *Gateway) AllLocations(_ context.Context) ([]location.Location, error) {
	var locations []location.Location
	g.read(func(s *Store) {
		locations = make([]location.Location, 0, len(s.locations))
		for _, l := range s.locations {
			locations = append(locations, l)
		}
	})
	slices.SortFunc(locations, func(a, b location.Location) int {
		return cmp.Compare(a.UnLocode().String(), b.UnLocode().String())
	})
	return locations, nil
}

func (g *Gateway) ObtainLocationByUnLocode(_ context.Context, code kernel.UnLocode) (location.Location, error) {
	var (
		l  location.Location
		ok bool
	)
	g.read(func(s *Store) {
		l, ok = s.locations[code]
	})
	if !ok {
		return location.Location{}, errs.NewObjectNotFoundError("location", code.String())
	}
	return l, nil
}

func (g *Gateway) SaveCargo(_ context.Context, c *cargo.Cargo) (*cargo.Cargo, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	spec := c.RouteSpecification()
	record := cargoRecord{
		trackingID:      c.TrackingID(),
		origin:          spec.Origin().UnLocode(),
		destination:     spec.Destination().UnLocode(),
		arrivalDeadline: spec.ArrivalDeadline(),
		transportStatus: c.Delivery().TransportStatus(),
	}

	var (
		saved *cargo.Cargo
		err   error
	)
	g.write(func(s *Store) func() {
		for _, code := range []kernel.UnLocode{record.origin, record.destination} {
			if _, ok := s.locations[code]; !ok {
				err = errs.NewPersistenceError("save cargo", fmt.Errorf("location %s is not registered", code))
				return nil
			}
		}

		if saved, err = s.restoreCargo(record); err != nil {
			err = errs.NewPersistenceError("save cargo", err)
			return nil
		}

		previous, existed := s.cargoes[record.trackingID]
		s.cargoes[record.trackingID] = record

		return func() {
			if existed {
				s.cargoes[record.trackingID] = previous
			} else {
				delete(s.cargoes, record.trackingID)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (g *Gateway) ObtainCargoByTrackingID(_ context.Context, id cargo.TrackingID) (*cargo.Cargo, error) {
	var (
		c   *cargo.Cargo
		err error
	)
	g.read(func(s *Store) {
		record, ok := s.cargoes[id]
		if !ok {
			err = errs.NewObjectNotFoundError("cargo", id.String())
			return
		}
		if c, err = s.restoreCargo(record); err != nil {
			err = errs.NewPersistenceError("obtain cargo", err)
		}
	})
	return c, err
}

func (g *Gateway) DeleteCargo(_ context.Context, id cargo.TrackingID) error {
	var err error
	g.write(func(s *Store) func() {
		record, ok := s.cargoes[id]
		if !ok {
			err = errs.NewObjectNotFoundError("cargo", id.String())
			return nil
		}
		events, hadEvents := s.events[id]

		delete(s.cargoes, id)
		delete(s.events, id)

		return func() {
			s.cargoes[id] = record
			if hadEvents {
				s.events[id] = events
			}
		}
	})
	return err
}

func (g *Gateway) QueryForExpectedArrivals(_ context.Context) ([]report.ExpectedArrivals, error) {
	counts := make(map[kernel.UnLocode]int)
	g.read(func(s *Store) {
		for _, record := range s.cargoes {
			counts[record.destination]++
		}
	})

	arrivals := make([]report.ExpectedArrivals, 0, len(counts))
	for city, n := range counts {
		a, err := report.NewExpectedArrivals(city, n)
		if err != nil {
			return nil, errs.NewPersistenceError("query expected arrivals", err)
		}
		arrivals = append(arrivals, a)
	}
	slices.SortFunc(arrivals, func(a, b report.ExpectedArrivals) int {
		return cmp.Compare(a.City.String(), b.City.String())
	})
	return arrivals, nil
}

func (g *Gateway) RecordHandlingEvent(_ context.Context, event handling.HandlingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	var err error
	g.write(func(s *Store) func() {
		id := event.TrackingID()
		if _, ok := s.cargoes[id]; !ok {
			err = errs.NewObjectNotFoundError("cargo", id.String())
			return nil
		}

		previous := s.events[id]
		s.events[id] = append(slices.Clone(previous), event)

		return func() {
			if previous == nil {
				delete(s.events, id)
				return
			}
			s.events[id] = previous
		}
	})
	return err
}

func (g *Gateway) HandlingHistory(_ context.Context, id cargo.TrackingID) (handling.HandlingHistory, error) {
	var (
		events []handling.HandlingEvent
		found  bool
	)
	g.read(func(s *Store) {
		_, found = s.cargoes[id]
		events = slices.Clone(s.events[id])
	})
	if !found {
		return handling.HandlingHistory{}, errs.NewObjectNotFoundError("cargo", id.String())
	}
	return handling.NewHandlingHistory(id, events)
}

func (g *Gateway) LocationExists(_ context.Context, l location.Location) (bool, error) {
	var ok bool
	g.read(func(s *Store) {
		_, ok = s.locations[l.UnLocode()]
	})
	return ok, nil
}

func (g *Gateway) SaveLocation(_ context.Context, l location.Location) (location.Location, error) {
	if err := l.Validate(); err != nil {
		return location.Location{}, err
	}

	g.write(func(s *Store) func() {
		code := l.UnLocode()
		previous, existed := s.locations[code]
		s.locations[code] = l

		return func() {
			if existed {
				s.locations[code] = previous
			} else {
				delete(s.locations, code)
			}
		}
	})
	return l, nil
}

func (g *Gateway) AllCargoes(_ context.Context) ([]cargo.CargoInfo, error) {
	var infos []cargo.CargoInfo
	g.read(func(s *Store) {
		infos = make([]cargo.CargoInfo, 0, len(s.cargoes))
		for _, record := range s.cargoes {
			infos = append(infos, cargo.CargoInfo{
				TrackingID:      record.trackingID,
				Origin:          record.origin,
				Destination:     record.destination,
				ArrivalDeadline: record.arrivalDeadline,
				TransportStatus: record.transportStatus,
			})
		}
	})
	slices.SortFunc(infos, func(a, b cargo.CargoInfo) int {
		return cmp.Compare(a.TrackingID.String(), b.TrackingID.String())
	})
	return infos, nil
}

// read runs fn under the read lock, or directly when the transaction already
// holds the write lock.
func (g *Gateway) read(fn func(s *Store)) {
	if !g.inTx {
		g.store.mu.RLock()
		defer g.store.mu.RUnlock()
	}
	fn(g.store)
}

// write runs fn, which returns the undo of its change or nil when it changed
// nothing. Outside a transaction the change is committed at once.
func (g *Gateway) write(fn func(s *Store) func()) {
	if !g.inTx {
		g.store.mu.Lock()
		defer g.store.mu.Unlock()
		fn(g.store)
		return
	}
	if undo := fn(g.store); undo != nil {
		g.undo = append(g.undo, undo)
	}
}

func (s *Store) restoreCargo(record cargoRecord) (*cargo.Cargo, error) {
	origin, ok := s.locations[record.origin]
	if !ok {
		return nil, fmt.Errorf("origin %s of cargo %s is not registered", record.origin, record.trackingID)
	}
	destination, ok := s.locations[record.destination]
	if !ok {
		return nil, fmt.Errorf("destination %s of cargo %s is not registered", record.destination, record.trackingID)
	}

	spec, err := cargo.RestoreRouteSpecification(origin, destination, record.arrivalDeadline)
	if err != nil {
		return nil, err
	}
	delivery, err := cargo.RestoreDelivery(record.transportStatus)
	if err != nil {
		return nil, err
	}
	return cargo.RestoreCargo(record.trackingID, origin, delivery, spec)
}
