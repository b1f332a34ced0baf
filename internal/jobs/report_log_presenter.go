package jobs

import (
	"context"
	"log/slog"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/location"
	"cargo/internal/core/domain/model/report"
	"cargo/internal/pkg/errs"
)

// reportLogPresenter writes report projections to the log.
type reportLogPresenter struct {
	logger *slog.Logger
}

func newReportLogPresenter(logger *slog.Logger) *reportLogPresenter {
	return &reportLogPresenter{logger: logger}
}

func (p *reportLogPresenter) PresentError(ctx context.Context, err error) {
	p.logger.WarnContext(ctx, "Report not produced", "kind", errs.KindOf(err).String(), "error", err)
}

func (p *reportLogPresenter) PresentExpectedArrivals(
	ctx context.Context,
	arrivals []report.ExpectedArrivals,
	regions map[kernel.UnLocode]location.Region,
) {
	total := 0
	for _, a := range arrivals {
		total += a.NumberOfCargoes
		p.logger.InfoContext(ctx, "Expected arrivals",
			"city", a.City.String(),
			"region", regions[a.City].String(),
			"cargoes", a.NumberOfCargoes,
		)
	}
	p.logger.InfoContext(ctx, "Expected arrivals report done", "destinations", len(arrivals), "cargoes", total)
}

func (p *reportLogPresenter) PresentCargoList(ctx context.Context, cargoes []cargo.CargoInfo) {
	p.logger.InfoContext(ctx, "Cargo list", "cargoes", len(cargoes))
}
