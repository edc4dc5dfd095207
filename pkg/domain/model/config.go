package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
)

// WatchConfig is the schema of the watch file: what to poll, how often, and
// where alerts go. Loaded once at startup and validated eagerly.
type WatchConfig struct {
	Polling      PollingConfig      `yaml:"polling"`
	Repositories []RepositoryConfig `yaml:"repositories"`
	Alerting     AlertConfig        `yaml:"alerting"`
}

type PollingConfig struct {
	CheckIntervalMinutes int   `yaml:"check_interval_minutes"`
	FetchLimit           int   `yaml:"fetch_limit"`
	ScanFiles            bool  `yaml:"scan_files"`
	MaxBlobSize          int64 `yaml:"max_blob_size"`
}

type RepositoryConfig struct {
	URL      string   `yaml:"url"`
	Keywords []string `yaml:"keywords"`
	Branches []string `yaml:"branches"`
}

type AlertConfig struct {
	From string     `yaml:"from"`
	To   string     `yaml:"to"`
	SMTP SMTPConfig `yaml:"smtp"`
}

type SMTPConfig struct {
	Host     string             `yaml:"host"`
	Port     int                `yaml:"port"`
	Username string             `yaml:"username"`
	Password types.SMTPPassword `yaml:"password" masq:"secret"`
}

// Enabled reports whether mail transport is configured at all. When disabled,
// findings are still reported through the log notifier.
func (x AlertConfig) Enabled() bool {
	return x.SMTP.Host != ""
}

func (x AlertConfig) Validate() error {
	if x.From == "" {
		return goerr.Wrap(types.ErrValidationFailed, "alerting.from is required")
	}
	if x.To == "" {
		return goerr.Wrap(types.ErrValidationFailed, "alerting.to is required")
	}
	if x.SMTP.Port == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "alerting.smtp.port is required")
	}
	return nil
}

// Validate checks the watch config eagerly so that a broken config aborts
// startup before any scanning begins.
func (x *WatchConfig) Validate() error {
	if x.Polling.CheckIntervalMinutes < 1 {
		return goerr.Wrap(types.ErrValidationFailed,
			"polling.check_interval_minutes must be 1 or greater",
			goerr.V("value", x.Polling.CheckIntervalMinutes),
		)
	}
	if x.Polling.FetchLimit < 0 {
		return goerr.Wrap(types.ErrValidationFailed,
			"polling.fetch_limit must not be negative",
			goerr.V("value", x.Polling.FetchLimit),
		)
	}
	if len(x.Repositories) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "at least one repository is required")
	}

	for _, repo := range x.Repositories {
		if _, _, err := ParseRepoURL(repo.URL); err != nil {
			return err
		}
	}

	if x.Alerting.Enabled() {
		if err := x.Alerting.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Targets converts the repository entries into scan targets. Validate must
// have passed before calling.
func (x *WatchConfig) Targets() ([]*Target, error) {
	targets := make([]*Target, 0, len(x.Repositories))
	for _, repo := range x.Repositories {
		target, err := NewTarget(repo.URL, repo.Keywords, repo.Branches)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}

// Policy returns the scan policy with defaults applied for unset knobs.
func (x *WatchConfig) Policy() ScanPolicy {
	policy := ScanPolicy{
		FetchLimit:  x.Polling.FetchLimit,
		ScanFiles:   x.Polling.ScanFiles,
		MaxBlobSize: x.Polling.MaxBlobSize,
	}
	if policy.FetchLimit == 0 {
		policy.FetchLimit = DefaultFetchLimit
	}
	if policy.MaxBlobSize == 0 {
		policy.MaxBlobSize = DefaultMaxBlobSize
	}
	return policy
}

// Interval returns the polling interval as a duration.
func (x *WatchConfig) Interval() time.Duration {
	return time.Duration(x.Polling.CheckIntervalMinutes) * time.Minute
}
