package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/commitwatch/pkg/cli/config"
	"github.com/secmon-lab/commitwatch/pkg/controller/scheduler"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		statePath string

		watch  config.Watch
		github config.GitHub
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "state",
			Usage:       "Path to watermark state file",
			Value:       "commitwatch.state.json",
			Sources:     cli.EnvVars("COMMITWATCH_STATE"),
			Destination: &statePath,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Poll repositories on a fixed schedule",
		Flags: slice.Flatten(
			serveFlags,
			watch.Flags(),
			github.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("State", statePath),
				slog.Any("Watch", watch),
				slog.Any("GitHub", github),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, watermarks, cfg, err := buildUseCase(ctx, &watch, &github, statePath)
			if err != nil {
				return err
			}

			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			schedErr := make(chan error, 1)
			sched := scheduler.New(uc, cfg.Interval())
			go func() {
				schedErr <- sched.Run(runCtx)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-schedErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down", "signal", sig)
				cancel()

				select {
				case <-schedErr:
				case <-time.After(30 * time.Second):
					return goerr.New("scheduler did not stop in time")
				}

				// A pass may have advanced watermarks moments before the
				// signal arrived; flush once more with a fresh context.
				flushCtx, flushCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer flushCancel()
				if err := watermarks.Save(flushCtx); err != nil {
					return goerr.Wrap(err, "failed to save watermarks on shutdown")
				}
			}

			return nil
		},
	}
}
