package countries

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/internal/deps"
)

const (
	ServiceKey = "country_service"
	ConfigKey  = "country_config"
)

// InitServices builds the catalog and service and registers them
func InitServices(container *deps.Container, cfg Config) {
	catalog := NewCatalog(container.Countries, container.Logger)
	svc := NewService(catalog, container.Countries, container.Sanitizer, cfg, container.Logger)
	container.RegisterService(ServiceKey, svc)
	container.RegisterService(ConfigKey, cfg)
}

// MountWeb mounts the HTML pages
func MountWeb(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	r.GET("/", handler.ListPage)
	r.GET("/countriesApi/:id", handler.DetailPage)
}

// MountAPI mounts the JSON country routes
func MountAPI(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	countriesGroup := r.Group("/countries")
	countriesGroup.GET("", handler.GetCountries)
	countriesGroup.GET("/:id", handler.GetCountry)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	service := container.GetService(ServiceKey).(Service)
	cfg, _ := container.GetService(ConfigKey).(Config)
	return NewHandler(service, cfg, container.Logger)
}
