package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/flagx"
	"github.com/spf13/viper"
)

const envPrefix = "CRAFTSTORE"

var keys = []string{"server_base_url", "request_timeout", "log_level", "log_format"}

// parseFile overlays cfg with the values found in the file at path.
// An empty path is not an error.
func parseFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	return apply(v, cfg)
}

// parseEnv overlays cfg with CRAFTSTORE_* environment variables.
func parseEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	return apply(v, cfg)
}

// apply copies the keys set in v into cfg. A bare number for
// request_timeout means seconds, as with -t.
func apply(v *viper.Viper, cfg *Config) error {
	if v.IsSet("server_base_url") {
		cfg.ServerBaseURL = v.GetString("server_base_url")
	}
	if v.IsSet("request_timeout") {
		d, err := flagx.Duration(v.GetString("request_timeout"), time.Second)
		if err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v.IsSet("log_level") {
		cfg.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("log_format") {
		cfg.LogFormat = v.GetString("log_format")
	}
	return nil
}
