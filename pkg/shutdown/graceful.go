package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/ats-adapter/pkg/logging"
)

// Stoppable is anything that can be drained within a deadline
type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until ctx is cancelled or one of signals arrives, then stops
// every target in order under a shared timeout. It returns the joined shutdown errors.
func Graceful(ctx context.Context, signals []os.Signal, timeout time.Duration, log *logging.Logger, targets ...Stoppable) error {
	sigCtx, stop := signal.NotifyContext(ctx, signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received", "targets", len(targets))

	drainCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	for _, t := range targets {
		if err := t.Shutdown(drainCtx); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
		return err
	}

	log.Info("graceful shutdown completed successfully")
	return nil
}
