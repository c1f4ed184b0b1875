// Package config loads server configuration from the environment.
package config

import (
	"github.com/joeshaw/envdecode"
)

// Config holds all process configuration
type Config struct {
	Addr     string `env:"BASTION_ADDR,default=:8000"`
	LogLevel string `env:"BASTION_LOG_LEVEL,default=info"`
	Dev      bool   `env:"BASTION_DEV,default=false"`
}

// Load decodes a Config from the environment
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
