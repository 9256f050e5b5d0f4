// Package config loads server configuration from environment variables.
package config

import "github.com/caarlos0/env/v11"

// Config holds the server settings.
type Config struct {
	// Port is the HTTP listen port.
	Port int `env:"PORT" envDefault:"8080"`

	// DBPath is the SQLite database file. Parent directories are
	// created on startup.
	DBPath string `env:"DB_PATH" envDefault:"./data/poise.db"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
