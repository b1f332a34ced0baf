package usecases

import (
	"context"
	"log/slog"

	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// PresentFailure logs err and forwards it unchanged to the presenter. Client-side
// failures are logged at info level, storage and unexpected ones at error level.
func PresentFailure(
	ctx context.Context,
	logger *slog.Logger,
	presenter ports.ErrorPresenter,
	operation string,
	err error,
) {
	kind := errs.KindOf(err)
	level := slog.LevelInfo
	if kind == errs.KindPersistence || kind == errs.KindUnexpected {
		level = slog.LevelError
	}
	logger.Log(ctx, level, "use case failed", "operation", operation, "kind", kind.String(), "error", err)

	presenter.PresentError(ctx, err)
}
