package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/flagx"
)

// Config holds runtime settings for the craftstore CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the REST backend, no trailing slash.
//   - RequestTimeout: per-request timeout; zero leaves requests unbounded.
//   - LogLevel / LogFormat: passed to logging.New.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// LoadConfig builds a Config from the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load applies defaults, then the optional config file, the environment
// and finally the flags found in args. Later sources take precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, flagx.ConfigFile(args)); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("config: negative request timeout %s", cfg.RequestTimeout)
	}

	cfg.ServerBaseURL = strings.TrimRight(cfg.ServerBaseURL, "/")
	return cfg, nil
}
