// Package config loads runtime configuration for the atsscan CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables with the ATS_ prefix.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-u string     backend base URL (scheme://host[:port])
//	-d string     path of the local session database
//	-t duration   per-request timeout
//	-w duration   delay before a slow history load is reported
//	-l string     log level (debug, info, warn, error)
//	-f string     output format (text or html)
//
// Environment
//
//	ATS_SERVER_URL, ATS_DATABASE_PATH, ATS_REQUEST_TIMEOUT,
//	ATS_LOAD_TIMEOUT, ATS_LOG_LEVEL, ATS_OUTPUT_FORMAT
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "database_path": "atsscan.db",
//	  "request_timeout": "2m",
//	  "load_timeout": "30s",
//	  "log_level": "info",
//	  "output_format": "text"
//	}
package config
