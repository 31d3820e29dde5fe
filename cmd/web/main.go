package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joefazee/atlas/app"
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/session"
)

// @title Atlas API
// @version 1.0
// @description Country explorer: searchable, paginated country list, country profiles and visitor themes.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := app.NewLogger(cfg, os.Stdout)

	sessionStore, err := cache.NewCache[session.State](cfg.Session.CacheOptions())
	if err != nil {
		logger.Fatal(err, map[string]interface{}{"op": "session store"})
	}
	if closer, ok := sessionStore.(io.Closer); ok {
		defer closer.Close()
	}

	container := app.NewContainer(cfg, logger, sessionStore)
	engine := app.NewRouter(cfg, container)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting atlas server", map[string]interface{}{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err, map[string]interface{}{"op": "listen"})
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, map[string]interface{}{"op": "shutdown"})
	}
}
