package handling_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cargo/internal/adapters/out/memory"
	"cargo/internal/core/application/usecases/handling"
	"cargo/internal/core/application/validator"
	"cargo/internal/core/domain/model/cargo"
	domain "cargo/internal/core/domain/model/handling"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/ports"
	"cargo/internal/core/ports/mocks"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustLocation(t *testing.T, code, name string, region location.Region) location.Location {
	t.Helper()
	l, err := location.NewLocation(kernel.MustUnLocode(code), name, region)
	require.NoError(t, err)
	return l
}

type eventPresenter struct {
	event *domain.HandlingEvent
	err   error
}

func (p *eventPresenter) PresentError(_ context.Context, err error) { p.err = err }

func (p *eventPresenter) PresentResultOfRecordedHandlingEvent(_ context.Context, e domain.HandlingEvent) {
	p.event = &e
}

// bookedCargo stores a NOT_RECEIVED cargo from New York to Melbourne.
func bookedCargo(t *testing.T) (ports.PersistenceGatewayFactory, *cargo.Cargo) {
	t.Helper()
	ctx := testContext(t)
	factory := memory.NewGatewayFactory(memory.NewStore())
	gw := factory.Create()
	nyc := mustLocation(t, "USNYC", "New York", location.NorthAmerica)
	mel := mustLocation(t, "AUMEL", "Melbourne", location.Oceania)
	for _, l := range []location.Location{nyc, mel} {
		_, err := gw.SaveLocation(ctx, l)
		require.NoError(t, err)
	}

	id, err := gw.NextTrackingID(ctx)
	require.NoError(t, err)
	spec, err := cargo.NewRouteSpecification(nyc, mel, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), now)
	require.NoError(t, err)
	c, err := cargo.NewCargo(id, nyc, cargo.NewDelivery(), spec)
	require.NoError(t, err)
	_, err = gw.SaveCargo(ctx, c)
	require.NoError(t, err)

	return factory, c
}

func TestRecordHandlingEvent_AppendsToHistory(t *testing.T) {
	ctx := testContext(t)
	factory, c := bookedCargo(t)
	p := &eventPresenter{}
	uc := handling.NewUseCase(p, validator.New(), factory, discardLogger(), clock)
	completedAt := now.Add(-2 * time.Hour)

	uc.RecordHandlingEvent(ctx, c.TrackingID().String(), "usnyc", "receive", completedAt)

	require.NoError(t, p.err)
	require.NotNil(t, p.event)
	assert.Equal(t, domain.Receive, p.event.EventType())
	assert.True(t, p.event.CompletedAt().Equal(completedAt))
	assert.True(t, p.event.RegisteredAt().Equal(now))

	history, err := factory.Create().HandlingHistory(ctx, c.TrackingID())
	require.NoError(t, err)
	require.Len(t, history.Events(), 1)
	assert.True(t, history.Events()[0].EventID().IsEqual(p.event.EventID()))

	stored, err := factory.Create().ObtainCargoByTrackingID(ctx, c.TrackingID())
	require.NoError(t, err)
	assert.Equal(t, cargo.NotReceived, stored.Delivery().TransportStatus())
}

func TestRecordHandlingEvent_Failures(t *testing.T) {
	factory, c := bookedCargo(t)
	trackingID := c.TrackingID().String()
	unknown, err := cargo.NewTrackingID(kernel.NewUUID())
	require.NoError(t, err)

	tests := []struct {
		name        string
		trackingID  string
		unLocode    string
		eventType   string
		completedAt time.Time
		wantKind    errs.Kind
	}{
		{name: "missing completion time", trackingID: trackingID, unLocode: "USNYC", eventType: "LOAD", wantKind: errs.KindInvalidInput},
		{name: "malformed tracking id", trackingID: "42", unLocode: "USNYC", eventType: "LOAD", completedAt: now, wantKind: errs.KindInvalidInput},
		{name: "malformed location", trackingID: trackingID, unLocode: "NYC", eventType: "LOAD", completedAt: now, wantKind: errs.KindInvalidInput},
		{name: "unknown event type", trackingID: trackingID, unLocode: "USNYC", eventType: "TELEPORT", completedAt: now, wantKind: errs.KindInvalidInput},
		{name: "unknown cargo", trackingID: unknown.String(), unLocode: "USNYC", eventType: "LOAD", completedAt: now, wantKind: errs.KindNotFound},
		{name: "unknown location", trackingID: trackingID, unLocode: "PELIM", eventType: "LOAD", completedAt: now, wantKind: errs.KindNotFound},
		{name: "completed in the future", trackingID: trackingID, unLocode: "USNYC", eventType: "LOAD", completedAt: now.Add(time.Hour), wantKind: errs.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &eventPresenter{}
			uc := handling.NewUseCase(p, validator.New(), factory, discardLogger(), clock)

			uc.RecordHandlingEvent(testContext(t), tt.trackingID, tt.unLocode, tt.eventType, tt.completedAt)

			require.Error(t, p.err)
			assert.Nil(t, p.event)
			assert.Equal(t, tt.wantKind, errs.KindOf(p.err))
		})
	}

	history, err := factory.Create().HandlingHistory(testContext(t), c.TrackingID())
	require.NoError(t, err)
	assert.Empty(t, history.Events())
}

func TestRecordHandlingEvent_RecordFailureRollsBack(t *testing.T) {
	ctx := testContext(t)
	nyc := mustLocation(t, "USNYC", "New York", location.NorthAmerica)
	mel := mustLocation(t, "AUMEL", "Melbourne", location.Oceania)
	spec, err := cargo.NewRouteSpecification(nyc, mel, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), now)
	require.NoError(t, err)
	id, err := cargo.NewTrackingID(kernel.NewUUID())
	require.NoError(t, err)
	c, err := cargo.NewCargo(id, nyc, cargo.NewDelivery(), spec)
	require.NoError(t, err)
	eventID, err := domain.NewEventID(kernel.NewUUID())
	require.NoError(t, err)
	recordErr := errs.NewPersistenceError("record handling event", assert.AnError)

	gw := new(mocks.Gateway)
	factory := new(mocks.GatewayFactory)
	presenter := new(mocks.Presenter)
	factory.On("Create").Return(gw).Once()
	mock.InOrder(
		gw.On("Begin", ctx).Return(nil).Once(),
		gw.On("ObtainCargoByTrackingID", ctx, id).Return(c, nil).Once(),
		gw.On("ObtainLocationByUnLocode", ctx, nyc.UnLocode()).Return(nyc, nil).Once(),
		gw.On("NextEventID", ctx).Return(eventID, nil).Once(),
		gw.On("RecordHandlingEvent", ctx, mock.AnythingOfType("handling.HandlingEvent")).Return(recordErr).Once(),
		gw.On("Rollback", ctx).Return(nil).Once(),
		presenter.On("PresentError", ctx, recordErr).Once(),
	)

	uc := handling.NewUseCase(presenter, validator.New(), factory, discardLogger(), clock)
	uc.RecordHandlingEvent(ctx, id.String(), "USNYC", "LOAD", now)

	gw.AssertExpectations(t)
	presenter.AssertExpectations(t)
	factory.AssertExpectations(t)
	gw.AssertNotCalled(t, "Commit", mock.Anything)
}
