package app

import (
	"fmt"

	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/nexus"
	"github.com/joefazee/atlas/internal/restcountries"
	"github.com/joefazee/atlas/internal/session"
)

type Config struct {
	RestCountries restcountries.Config
	Session       session.Config
	Countries     countries.Config

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080" validate:"required,numeric"`
	Env      string `env:"APP_ENV" env-default:"development" validate:"oneof=development production test"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info error off"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}

// Addr is the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Level is the configured log level
func (c *Config) Level() logger.Level {
	return logger.ParseLevel(c.LogLevel)
}
