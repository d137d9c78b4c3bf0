package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/flagx"
)

// parseFlags populates cfg from the flags in args that this package owns;
// anything else on the command line is ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("craftstore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the REST backend")
	timeout := fs.Int("t", 0, "request timeout in seconds (0 = none)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(flagx.Filter(args, "-a", "-t", "-l", "-f")); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if flagx.Passed(fs, "t") {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	return nil
}
