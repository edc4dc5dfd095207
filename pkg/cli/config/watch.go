package config

import (
	"log/slog"
	"os"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type Watch struct {
	path string
}

func (x *Watch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to watch config file",
			Category:    "Watch",
			Value:       "commitwatch.yml",
			Sources:     cli.EnvVars("COMMITWATCH_CONFIG"),
			Destination: &x.path,
		},
	}
}

var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads the watch config file, expands ${ENV_NAME} references and
// validates the result. An unresolved reference is an error: silently
// scanning with an empty credential is worse than failing at startup.
func (x *Watch) Load() (*model.WatchConfig, error) {
	raw, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read watch config file", goerr.V("path", x.path))
	}

	expanded, err := expandEnvRefs(string(raw))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to expand environment references", goerr.V("path", x.path))
	}

	var cfg model.WatchConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse watch config file", goerr.V("path", x.path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid watch config", goerr.V("path", x.path))
	}

	return &cfg, nil
}

func expandEnvRefs(raw string) (string, error) {
	var missing []string
	expanded := envRefPattern.ReplaceAllStringFunc(raw, func(ref string) string {
		name := envRefPattern.FindStringSubmatch(ref)[1]
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return ref
		}
		return value
	})

	if len(missing) > 0 {
		return "", goerr.Wrap(types.ErrValidationFailed,
			"environment variable(s) referenced in config are not set",
			goerr.V("names", missing),
		)
	}

	return expanded, nil
}

func (x *Watch) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
	)
}
