package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cargo/internal/core/application/usecases"
	"cargo/internal/core/application/usecases/booking"
	"cargo/internal/core/application/usecases/handling"
	"cargo/internal/core/application/usecases/locations"
	"cargo/internal/core/application/usecases/report"
	"cargo/internal/core/application/usecases/tracking"
	"cargo/internal/core/application/validator"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/ports"
)

// CompositionRoot builds use cases over one storage. It satisfies the HTTP
// adapter's use-case factory and the report job's factory.
type CompositionRoot struct {
	gateways  ports.PersistenceGatewayFactory
	validator *validator.Validator
	logger    *slog.Logger
	clock     usecases.Clock
}

func NewCompositionRoot(gateways ports.PersistenceGatewayFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gateways:  gateways,
		validator: validator.New(),
		logger:    logger,
		clock:     usecases.SystemClock,
	}
}

// Validator is shared by the use cases and echo's request validation.
func (c CompositionRoot) Validator() *validator.Validator {
	return c.validator
}

func (c CompositionRoot) CreateBookingUseCase(presenter ports.BookingPresenter) *booking.UseCase {
	return booking.NewUseCase(presenter, c.validator, c.gateways, c.logger, c.clock)
}

func (c CompositionRoot) CreateHandlingUseCase(presenter ports.HandlingPresenter) *handling.UseCase {
	return handling.NewUseCase(presenter, c.validator, c.gateways, c.logger, c.clock)
}

func (c CompositionRoot) CreateTrackingUseCase(presenter ports.TrackingPresenter) *tracking.UseCase {
	return tracking.NewUseCase(presenter, c.validator, c.gateways, c.logger)
}

func (c CompositionRoot) CreateReportUseCase(presenter ports.ReportPresenter) *report.UseCase {
	return report.NewUseCase(presenter, c.validator, c.gateways, c.logger)
}

func (c CompositionRoot) CreateLocationsUseCase(presenter ports.LocationsPresenter) *locations.UseCase {
	return locations.NewUseCase(presenter, c.validator, c.gateways, c.logger)
}

// SeedLocations registers every seed through the locations use case. Existing
// locations are updated. All failures are returned together.
func (c CompositionRoot) SeedLocations(ctx context.Context, seeds []LocationSeed) error {
	var failures []error
	for _, seed := range seeds {
		p := &seedPresenter{}
		c.CreateLocationsUseCase(p).RegisterLocation(ctx, seed.UnLocode, seed.Name, seed.Region)
		if p.err != nil {
			failures = append(failures, fmt.Errorf("seed location %s: %w", seed.UnLocode, p.err))
			continue
		}
		c.logger.InfoContext(ctx, "Location seeded", "un_locode", p.location.UnLocode().String(), "created", p.created)
	}
	return errors.Join(failures...)
}

type seedPresenter struct {
	location location.Location
	created  bool
	err      error
}

func (p *seedPresenter) PresentError(_ context.Context, err error) {
	p.err = err
}

func (p *seedPresenter) PresentRegisteredLocation(_ context.Context, l location.Location, created bool) {
	p.location = l
	p.created = created
}
