package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
)

// ScanAll runs one pass over every configured target. A failing target is
// logged and skipped; the remaining targets are still scanned in the same
// pass. Watermarks are durably saved once at the end when any advanced.
func (x *UseCase) ScanAll(ctx context.Context) error {
	logger := logging.From(ctx)
	logger.Info("starting scan pass", slog.Int("targets", len(x.targets)))

	var successCount, failureCount int
	var advanced bool
	for _, target := range x.targets {
		targetAdvanced, err := x.scanTarget(ctx, target)
		if err != nil {
			failureCount++
			logger.Warn("failed to scan repository",
				slog.String("repo", string(target.URL)),
				slog.String("error", err.Error()),
			)
			continue
		}

		successCount++
		if targetAdvanced {
			advanced = true
		}
	}

	if advanced {
		if err := x.clients.Watermarks().Save(ctx); err != nil {
			return goerr.Wrap(err, "failed to save watermarks")
		}
	}

	logger.Info("completed scan pass",
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
	)

	return nil
}
