// Package config reads the site's settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// SMTP holds the mail relay used for contact form delivery.
type SMTP struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	To   string `env:"TO_EMAIL"`
}

// Configured reports whether credentials and a recipient are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != "" && s.To != ""
}

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	ContentPath string `env:"PORTFOLIO_CONTENT"`
	SMTP        SMTP
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
