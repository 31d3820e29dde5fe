package deps

import (
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/restcountries"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/session"
)

// Container holds all shared dependencies
type Container struct {
	Countries   *restcountries.Client
	Sanitizer   sanitizer.HTMLStripperer
	Logger      logger.Logger
	Sessions    *session.Manager
	Environment string

	// Store services as interfaces to avoid imports
	services map[string]interface{}
}

func NewContainer(countries *restcountries.Client,
	sanitizer sanitizer.HTMLStripperer,
	logger logger.Logger,
	sessions *session.Manager,
	environment string,
) *Container {
	return &Container{
		Countries:   countries,
		Sanitizer:   sanitizer,
		Logger:      logger,
		Sessions:    sessions,
		Environment: environment,
		services:    make(map[string]interface{}),
	}
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
