package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/atsscan/internal/client/render"
)

// Config holds runtime settings for the atsscan CLI.
//
// Fields:
//   - ServerBaseURL: root URL of the resume-scan backend.
//   - DatabasePath: sqlite file that keeps the session between runs.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - LoadTimeout: how long a history load may run before a stall notice.
//   - LogLevel / OutputFormat: diagnostics level and renderer selection.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
	LoadTimeout    time.Duration
	LogLevel       string
	OutputFormat   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.DatabasePath = "atsscan.db"
	c.RequestTimeout = 2 * time.Minute
	c.LoadTimeout = 30 * time.Second
	c.LogLevel = "warn"
	c.OutputFormat = render.FormatText
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server url %q", c.ServerBaseURL)
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database path is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.LoadTimeout <= 0 {
		return fmt.Errorf("load timeout must be positive, got %s", c.LoadTimeout)
	}
	switch strings.ToLower(c.OutputFormat) {
	case render.FormatText, render.FormatHTML:
	default:
		return fmt.Errorf("unknown output format %q", c.OutputFormat)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(ctx context.Context, args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, nil); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	cfg.ServerBaseURL = strings.TrimRight(cfg.ServerBaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
