// Package tracking shows a cargo together with its handling history.
package tracking

import (
	"context"
	"log/slog"

	"cargo/internal/core/application/usecases"
	"cargo/internal/core/application/validator"
	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/ports"
)

type UseCase struct {
	presenter ports.TrackingPresenter
	validator *validator.Validator
	gateways  ports.PersistenceGatewayFactory
	logger    *slog.Logger
}

func NewUseCase(
	presenter ports.TrackingPresenter,
	v *validator.Validator,
	gateways ports.PersistenceGatewayFactory,
	logger *slog.Logger,
) *UseCase {
	return &UseCase{
		presenter: presenter,
		validator: v,
		gateways:  gateways,
		logger:    logger.With("component", "tracking"),
	}
}

// TrackCargo presents the cargo identified by trackingID and its handling history.
func (u *UseCase) TrackCargo(ctx context.Context, trackingID string) {
	defer usecases.Recover(ctx, u.presenter)

	id, err := cargo.ParseTrackingID(trackingID)
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "track cargo", err)
		return
	}

	gw := u.gateways.Create()

	c, err := gw.ObtainCargoByTrackingID(ctx, id)
	if err == nil {
		c, err = validator.One(u.validator, c)
	}
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "track cargo", err)
		return
	}

	history, err := gw.HandlingHistory(ctx, id)
	if err == nil {
		history, err = validator.One(u.validator, history)
	}
	if err != nil {
		usecases.PresentFailure(ctx, u.logger, u.presenter, "track cargo", err)
		return
	}

	u.presenter.PresentCargoTrackingView(ctx, c, history)
}
