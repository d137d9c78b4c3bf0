// Package config loads runtime configuration for the craftstore CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (JSON, YAML or TOML, chosen by extension),
//     selected with -c or -config.
//  3. Environment variables with the CRAFTSTORE_ prefix.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the REST backend
//	-t int      request timeout in seconds (0 = no timeout)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, console
//
// # File / environment keys
//
// Durations are strings like "30s":
//
//	{
//	  "server_base_url": "http://192.168.0.27:3000",
//	  "request_timeout": "0s",
//	  "log_level": "info",
//	  "log_format": "console"
//	}
//
// The same keys are read from CRAFTSTORE_SERVER_BASE_URL,
// CRAFTSTORE_REQUEST_TIMEOUT, CRAFTSTORE_LOG_LEVEL and CRAFTSTORE_LOG_FORMAT.
package config
