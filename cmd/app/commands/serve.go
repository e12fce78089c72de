package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// BackgroundServer is a server that runs next to a command, like the metrics server.
type BackgroundServer interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunWithServer runs fn while server serves, then shuts the server down. With linger set
// the server keeps serving after fn succeeds until ctx is cancelled, so the last campaign
// can still be scraped. A server that fails to start cancels fn's context.
func RunWithServer(
	ctx context.Context,
	server BackgroundServer,
	logger *slog.Logger,
	shutdownTimeout time.Duration,
	linger bool,
	fn func(ctx context.Context) error,
) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Start(gctx); err != nil {
			return fmt.Errorf("metrics server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := fn(gctx)
		if err == nil && linger {
			logger.Info("command finished, serving until interrupted")
			<-gctx.Done()
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if shutErr := server.Shutdown(shutdownCtx); shutErr != nil {
			return errors.Join(err, fmt.Errorf("metrics server shutdown: %w", shutErr))
		}
		return err
	})

	return g.Wait()
}
