// Package memory provides a process-local PersistenceGateway.
//
// A Store holds the state shared by every gateway created from the same
// factory. A gateway with an open transaction holds the store's write lock until
// Commit or Rollback, and keeps an undo log so Rollback restores the state seen
// at Begin. Outside a transaction each call locks the store for its own duration.
//
// Cargoes are stored by location code and resolved on every read, as a
// relational store would.
package memory

import (
	"sync"
	"time"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
)

type cargoRecord struct {
	trackingID      cargo.TrackingID
	origin          kernel.UnLocode
	destination     kernel.UnLocode
	arrivalDeadline time.Time
	transportStatus cargo.TransportStatus
}

// Store is safe for concurrent use by gateways created from it.
type Store struct {
	mu        sync.RWMutex
	locations map[kernel.UnLocode]location.Location
	cargoes   map[cargo.TrackingID]cargoRecord
	events    map[cargo.TrackingID][]handling.HandlingEvent
}

func NewStore() *Store {
	return &Store{
		locations: make(map[kernel.UnLocode]location.Location),
		cargoes:   make(map[cargo.TrackingID]cargoRecord),
		events:    make(map[cargo.TrackingID][]handling.HandlingEvent),
	}
}
