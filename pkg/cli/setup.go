package cli

import (
	"context"

	"github.com/secmon-lab/commitwatch/pkg/cli/config"
	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/infra"
	"github.com/secmon-lab/commitwatch/pkg/infra/smtpmail"
	"github.com/secmon-lab/commitwatch/pkg/repository/localfile"
	"github.com/secmon-lab/commitwatch/pkg/usecase"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
)

// buildUseCase assembles the scan usecase shared by the serve and scan
// commands: watch config, GitHub client, watermark store and notifier.
func buildUseCase(ctx context.Context, watch *config.Watch, github *config.GitHub, statePath string) (*usecase.UseCase, interfaces.WatermarkRepository, *model.WatchConfig, error) {
	cfg, err := watch.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	targets, err := cfg.Targets()
	if err != nil {
		return nil, nil, nil, err
	}

	ghClient, err := github.New()
	if err != nil {
		return nil, nil, nil, err
	}

	watermarks := localfile.New(statePath)
	if err := watermarks.Load(ctx); err != nil {
		return nil, nil, nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithWatermarkRepository(watermarks),
	}

	if cfg.Alerting.Enabled() {
		mailer, err := smtpmail.New(cfg.Alerting)
		if err != nil {
			return nil, nil, nil, err
		}
		infraOptions = append(infraOptions, infra.WithNotifier(mailer))
	} else {
		logging.From(ctx).Warn("mail transport is not configured, findings are logged only")
	}

	clients := infra.New(infraOptions...)
	uc := usecase.New(clients, targets, cfg.Policy())

	return uc, watermarks, cfg, nil
}
