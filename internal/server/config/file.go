package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/flagx"
	"github.com/spf13/viper"
)

const envPrefix = "CRAFTSTORE_SERVER"

var keys = []string{
	"listen_addr", "secret_key", "token_ttl", "upload_dir",
	"seed_admin_nombre", "seed_admin_telefono", "seed_admin_password",
	"log_level", "log_format",
}

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

func parseEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	return apply(v, cfg)
}

// apply copies the keys set in v into cfg. A bare number for token_ttl
// means minutes, as with -t.
func apply(v *viper.Viper, cfg *Config) error {
	fields := map[string]*string{
		"listen_addr":         &cfg.ListenAddr,
		"secret_key":          &cfg.SecretKey,
		"upload_dir":          &cfg.UploadDir,
		"seed_admin_nombre":   &cfg.SeedAdminNombre,
		"seed_admin_telefono": &cfg.SeedAdminTelefono,
		"seed_admin_password": &cfg.SeedAdminPassword,
		"log_level":           &cfg.LogLevel,
		"log_format":          &cfg.LogFormat,
	}
	for k, dst := range fields {
		if v.IsSet(k) {
			*dst = v.GetString(k)
		}
	}
	if v.IsSet("token_ttl") {
		d, err := flagx.Duration(v.GetString("token_ttl"), time.Minute)
		if err != nil {
			return fmt.Errorf("token_ttl: %w", err)
		}
		cfg.TokenTTL = d
	}
	return nil
}
