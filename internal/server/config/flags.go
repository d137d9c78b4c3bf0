package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/flagx"
)

// parseFlags populates selected fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":3000")
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-u string   upload directory
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	ttl := fs.Int("t", 0, "token validity (in minutes)")
	fs.StringVar(&cfg.UploadDir, "u", cfg.UploadDir, "upload directory")

	if err := fs.Parse(flagx.Filter(args, "-a", "-s", "-t", "-u")); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if flagx.Passed(fs, "t") {
		cfg.TokenTTL = time.Duration(*ttl) * time.Minute
	}
	return nil
}
