// Package config handles configuration for the development backend,
// including defaults, an optional file, the environment and flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/flagx"
)

// Config holds runtime settings for the development backend.
//
// Fields:
//   - ListenAddr: HTTP bind address.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenTTL: lifetime of issued tokens.
//   - UploadDir: directory under the working directory where craft images are stored.
//   - SeedAdmin*: the administrator account created at startup.
type Config struct {
	ListenAddr        string
	SecretKey         string
	TokenTTL          time.Duration
	UploadDir         string
	SeedAdminNombre   string
	SeedAdminTelefono string
	SeedAdminPassword string
	LogLevel          string
	LogFormat         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3000"
	c.SecretKey = "secretKey"
	c.TokenTTL = 60 * time.Minute
	c.UploadDir = "uploads"
	c.SeedAdminNombre = "admin"
	c.SeedAdminTelefono = "0000"
	c.SeedAdminPassword = "admin"
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config from the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load applies defaults, the optional config file, CRAFTSTORE_SERVER_*
// variables and then flags. Later sources take precedence.
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
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("config: token validity must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("config: empty secret key")
	}
	return cfg, nil
}
