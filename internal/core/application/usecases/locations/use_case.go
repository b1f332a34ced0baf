// Package locations registers the ports and terminals cargoes can be booked between.
package locations

import (
	"context"
	"log/slog"

	"cargo/internal/core/application/usecases"
	"cargo/internal/core/application/validator"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

type UseCase struct {
	presenter ports.LocationsPresenter
	validator *validator.Validator
	gateways  ports.PersistenceGatewayFactory
	logger    *slog.Logger
}

func NewUseCase(
	presenter ports.LocationsPresenter,
	v *validator.Validator,
	gateways ports.PersistenceGatewayFactory,
	logger *slog.Logger,
) *UseCase {
	return &UseCase{
		presenter: presenter,
		validator: v,
		gateways:  gateways,
		logger:    logger.With("component", "locations"),
	}
}

// RegisterLocation creates the location identified by code, or replaces the
// name and region of an existing one. The presenter is told which of the two
// happened.
func (u *UseCase) RegisterLocation(ctx context.Context, code, name, region string) {
	defer usecases.Recover(ctx, u.presenter)

	l, err := buildLocation(code, name, region)
	if err == nil {
		l, err = validator.One(u.validator, l)
	}
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "register location", err)
		return
	}

	gw := u.gateways.Create()

	var (
		saved   location.Location
		existed bool
	)
	err = usecases.InTransaction(ctx, gw, func() error {
		var err error
		if existed, err = gw.LocationExists(ctx, l); err != nil {
			return err
		}
		if saved, err = gw.SaveLocation(ctx, l); err != nil {
			return err
		}
		_, err = validator.One(u.validator, saved)
		return err
	})
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "register location", err)
		return
	}

	u.logger.InfoContext(ctx, "location registered", "location", saved.String(), "created", !existed)
	u.presenter.PresentRegisteredLocation(ctx, saved, !existed)
}

func buildLocation(code, name, region string) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		return location.Location{}, errs.NewInvalidInputSpecificationErrorWithCause("location code", err)
	}

	r, err := location.ParseRegion(region)
	if err != nil {
		return location.Location{}, errs.NewInvalidInputSpecificationErrorWithCause("region", err)
	}

	return location.NewLocation(unLocode, name, r)
}
