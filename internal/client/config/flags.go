package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/atsscan/internal/flagx"
)

var knownFlags = []string{"-u", "-d", "-t", "-w", "-l", "-f"}

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in knownFlags are considered; see flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "u", cfg.ServerBaseURL, "backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "session database path")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.DurationVar(&cfg.LoadTimeout, "w", cfg.LoadTimeout, "history load stall warning delay")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.OutputFormat, "f", cfg.OutputFormat, "output format (text|html)")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
