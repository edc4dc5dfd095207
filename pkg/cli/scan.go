package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/commitwatch/pkg/cli/config"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func scanCommand() *cli.Command {
	var (
		statePath string

		watch  config.Watch
		github config.GitHub
	)

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"sc"},
		Usage:   "Run a single polling pass and exit",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "state",
				Usage:       "Path to watermark state file",
				Value:       "commitwatch.state.json",
				Sources:     cli.EnvVars("COMMITWATCH_STATE"),
				Destination: &statePath,
			},
		}, watch.Flags(), github.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting scan",
				slog.Any("State", statePath),
				slog.Any("Watch", watch),
				slog.Any("GitHub", github),
			)

			uc, _, _, err := buildUseCase(ctx, &watch, &github, statePath)
			if err != nil {
				return err
			}

			passID, ctx := logging.CtxPassID(ctx)
			ctx = logging.With(ctx, logging.From(ctx).With(slog.String("pass_id", string(passID))))

			if err := uc.ScanAll(ctx); err != nil {
				return goerr.Wrap(err, "failed to run polling pass")
			}

			return nil
		},
	}
}
