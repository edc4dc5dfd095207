package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/utils/errutil"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
)

// Scheduler drives repeated scan passes at a fixed interval. A pass that
// fails or overruns never stops the schedule; the next tick starts a fresh
// pass.
type Scheduler struct {
	uc       interfaces.UseCase
	interval time.Duration
}

func New(uc interfaces.UseCase, interval time.Duration) *Scheduler {
	return &Scheduler{
		uc:       uc,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled. The first pass starts immediately;
// subsequent passes start every interval.
func (x *Scheduler) Run(ctx context.Context) error {
	logger := logging.From(ctx)
	logger.Info("scheduler started", slog.Duration("interval", x.interval))

	x.runPass(ctx)

	ticker := time.NewTicker(x.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("scheduler stopped")
			return nil

		case <-ticker.C:
			x.runPass(ctx)
		}
	}
}

func (x *Scheduler) runPass(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	// Each pass gets its own ID so log lines of adjacent passes can be
	// told apart.
	passID, ctx := logging.CtxPassID(ctx)
	ctx = logging.With(ctx, logging.From(ctx).With(slog.String("pass_id", string(passID))))

	if err := x.uc.ScanAll(ctx); err != nil {
		errutil.HandleError(ctx, "scan pass failed", err)
	}
}
