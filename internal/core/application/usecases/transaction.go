// Package usecases holds the pipeline shared by every use case: a transactional
// scope that rolls back on any failure, and a recovery boundary that turns a
// panic into a presented error.
//
// Each use case lives in its own sub-package and reports through a presenter
// port; none of them returns a value to its caller.
package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// Clock returns the current instant. Use cases take it as a dependency so that
// "now" is deterministic in tests.
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// InTransaction runs fn between Begin and Commit. If fn fails, panics or Commit
// fails, the transaction is rolled back and the error is returned; a rollback
// failure is joined to it. A panic is returned as an errs.ErrUnexpected error.
//
// Example:
//
//	gw := gateways.Create()
//	err := usecases.InTransaction(ctx, gw, func() error {
//	    _, err := gw.SaveCargo(ctx, c)
//	    return err
//	})
func InTransaction(ctx context.Context, tx ports.TxManager, fn func() error) (err error) {
	if err = tx.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = unexpected(r)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	if err = fn(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Recover is deferred by use cases that do not open a transaction. It presents
// a recovered panic as an errs.ErrUnexpected error.
func Recover(ctx context.Context, presenter ports.ErrorPresenter) {
	if r := recover(); r != nil {
		presenter.PresentError(ctx, unexpected(r))
	}
}

func unexpected(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", errs.ErrUnexpected, err)
	}
	return fmt.Errorf("%w: %v", errs.ErrUnexpected, r)
}
