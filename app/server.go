package app

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/app/doc"
	"github.com/joefazee/atlas/app/theme"
	"github.com/joefazee/atlas/app/web"
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/deps"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/restcountries"
	"github.com/joefazee/atlas/internal/router"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/session"

	_ "github.com/joefazee/atlas/docs"
)

// NewLogger builds the application logger: human readable output in
// development, JSON otherwise.
func NewLogger(cfg *Config, w io.Writer) logger.Logger {
	fields := logger.Fields{"app": "atlas", "env": cfg.Env}
	if cfg.Env == "development" {
		return logger.NewConsoleLogger(w, cfg.Level(), fields)
	}
	return logger.NewZeroLogger(w, cfg.Level(), fields)
}

// NewContainer wires the shared dependencies
func NewContainer(cfg *Config, log logger.Logger, sessionStore cache.Cache[session.State]) *deps.Container {
	return deps.NewContainer(
		restcountries.NewClient(cfg.RestCountries, nil),
		sanitizer.NewHTMLStripper(),
		log,
		session.NewManager(sessionStore, cfg.Session, log),
		cfg.Env,
	)
}

// NewRouter builds the gin engine with every route mounted
func NewRouter(cfg *Config, container *deps.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), api.RequestLogger(container.Logger), api.CorsMiddleware())
	engine.SetHTMLTemplate(web.MustTemplates())

	engine.GET("/healthz", api.HealthCheck(cfg.Env))
	doc.Init(engine)

	countries.InitServices(container, cfg.Countries)

	mounter := router.NewMounter(container)
	mounter.Web(engine).
		Mount(countries.MountWeb).
		Mount(theme.MountWeb)
	mounter.API(engine).
		Mount(countries.MountAPI).
		Mount(theme.MountAPI)

	return engine
}
