package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/atsscan/internal/flagx"
	"github.com/dmitrijs2005/atsscan/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Missing keys
// leave the matching Config field untouched.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LoadTimeout    timex.Duration `json:"load_timeout"`
	LogLevel       string         `json:"log_level"`
	OutputFormat   string         `json:"output_format"`
}

// parseJson overlays cfg with the file named by -c or -config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LoadTimeout.Duration != 0 {
		cfg.LoadTimeout = jc.LoadTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.OutputFormat != "" {
		cfg.OutputFormat = jc.OutputFormat
	}
	return nil
}
