package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const envPrefix = "ATS_"

// envConfig mirrors Config for go-envconfig. Unset variables stay zero and
// do not override earlier layers.
type envConfig struct {
	ServerBaseURL  string        `env:"SERVER_URL"`
	DatabasePath   string        `env:"DATABASE_PATH"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LoadTimeout    time.Duration `env:"LOAD_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
	OutputFormat   string        `env:"OUTPUT_FORMAT"`
}

// parseEnv overlays cfg with ATS_* variables. A nil lookuper reads the
// process environment.
func parseEnv(ctx context.Context, cfg *Config, l envconfig.Lookuper) error {
	if l == nil {
		l = envconfig.OsLookuper()
	}

	var ec envConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &ec,
		Lookuper: envconfig.PrefixLookuper(envPrefix, l),
	}); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.LoadTimeout != 0 {
		cfg.LoadTimeout = ec.LoadTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.OutputFormat != "" {
		cfg.OutputFormat = ec.OutputFormat
	}
	return nil
}
