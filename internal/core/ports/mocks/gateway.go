// Package mocks provides testify mocks of the ports, shared by the use-case tests.
package mocks

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/domain/model/report"
	"cargo/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type GatewayFactory struct{ mock.Mock }

func (m *GatewayFactory) Create() ports.PersistenceGateway {
	args := m.Called()
	return args.Get(0).(ports.PersistenceGateway)
}

type Gateway struct{ mock.Mock }

func (m *Gateway) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Gateway) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Gateway) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Gateway) NextTrackingID(ctx context.Context) (cargo.TrackingID, error) {
	args := m.Called(ctx)
	return args.Get(0).(cargo.TrackingID), args.Error(1)
}

func (m *Gateway) NextEventID(ctx context.Context) (handling.EventID, error) {
	args := m.Called(ctx)
	return args.Get(0).(handling.EventID), args.Error(1)
}

func (m *Gateway) AllLocations(ctx context.Context) ([]location.Location, error) {
	args := m.Called(ctx)
	locations, _ := args.Get(0).([]location.Location)
	return locations, args.Error(1)
}

func (m *Gateway) ObtainLocationByUnLocode(ctx context.Context, code kernel.UnLocode) (location.Location, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(location.Location), args.Error(1)
}

func (m *Gateway) SaveCargo(ctx context.Context, c *cargo.Cargo) (*cargo.Cargo, error) {
	args := m.Called(ctx, c)
	saved, _ := args.Get(0).(*cargo.Cargo)
	return saved, args.Error(1)
}

func (m *Gateway) ObtainCargoByTrackingID(ctx context.Context, id cargo.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*cargo.Cargo)
	return c, args.Error(1)
}

func (m *Gateway) DeleteCargo(ctx context.Context, id cargo.TrackingID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *Gateway) QueryForExpectedArrivals(ctx context.Context) ([]report.ExpectedArrivals, error) {
	args := m.Called(ctx)
	arrivals, _ := args.Get(0).([]report.ExpectedArrivals)
	return arrivals, args.Error(1)
}

func (m *Gateway) RecordHandlingEvent(ctx context.Context, event handling.HandlingEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *Gateway) HandlingHistory(ctx context.Context, id cargo.TrackingID) (handling.HandlingHistory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(handling.HandlingHistory), args.Error(1)
}

func (m *Gateway) LocationExists(ctx context.Context, l location.Location) (bool, error) {
	args := m.Called(ctx, l)
	return args.Bool(0), args.Error(1)
}

func (m *Gateway) SaveLocation(ctx context.Context, l location.Location) (location.Location, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(location.Location), args.Error(1)
}

func (m *Gateway) AllCargoes(ctx context.Context) ([]cargo.CargoInfo, error) {
	args := m.Called(ctx)
	cargoes, _ := args.Get(0).([]cargo.CargoInfo)
	return cargoes, args.Error(1)
}
