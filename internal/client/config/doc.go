// Package config loads runtime configuration for the csclient CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-d string   local cache database path
//	-t int      request timeout (seconds)
//	-r float    requests per second (0 disables rate limiting)
//	-l string   log level
//	-f string   log format
//	-i int      online check interval (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds. Absent keys keep their earlier value.
//
//	{
//	  "base_url": "https://chromestatus.com/api/v0",
//	  "db_path": "csclient.db",
//	  "request_timeout": "15s",
//	  "requests_per_second": 5,
//	  "log_format": "json",
//	  "log_level": "debug",
//	  "online_check_interval": "30s"
//	}
package config
