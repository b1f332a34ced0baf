// Package report presents read-only projections over every booked cargo.
package report

import (
	"context"
	"log/slog"

	"cargo/internal/core/application/usecases"
	"cargo/internal/core/application/validator"
	"cargo/internal/core/ports"
)

type UseCase struct {
	presenter ports.ReportPresenter
	validator *validator.Validator
	gateways  ports.PersistenceGatewayFactory
	logger    *slog.Logger
}

func NewUseCase(
	presenter ports.ReportPresenter,
	v *validator.Validator,
	gateways ports.PersistenceGatewayFactory,
	logger *slog.Logger,
) *UseCase {
	return &UseCase{
		presenter: presenter,
		validator: v,
		gateways:  gateways,
		logger:    logger.With("component", "report"),
	}
}

// ExpectedArrivals presents the number of cargoes bound for each destination,
// together with the region of every known location.
func (u *UseCase) ExpectedArrivals(ctx context.Context) {
	defer usecases.Recover(ctx, u.presenter)

	gw := u.gateways.Create()

	arrivals, err := gw.QueryForExpectedArrivals(ctx)
	if err == nil {
		arrivals, err = validator.All(u.validator, arrivals)
	}
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "expected arrivals", err)
		return
	}

	regions, err := ports.AllRegionsMap(ctx, gw)
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "expected arrivals", err)
		return
	}

	u.presenter.PresentExpectedArrivals(ctx, arrivals, regions)
}

// ListCargoes presents a summary of every booked cargo.
func (u *UseCase) ListCargoes(ctx context.Context) {
	defer usecases.Recover(ctx, u.presenter)

	gw := u.gateways.Create()

	cargoes, err := gw.AllCargoes(ctx)
	if err == nil {
		cargoes, err = validator.All(u.validator, cargoes)
	}
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "list cargoes", err)
		return
	}

	u.presenter.PresentCargoList(ctx, cargoes)
}
