// Package session keeps per-visitor view state (theme and list position)
// behind a cookie, in any cache.Cache backend.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/logger"
)

const (
	contextKey = "session"
	keyPrefix  = "session:"
)

// Config holds the session cookie and storage settings
type Config struct {
	CookieName    string        `env:"SESSION_COOKIE_NAME" env-default:"atlas_session" validate:"required"`
	TTL           time.Duration `env:"SESSION_TTL" env-default:"12h" validate:"gt=0"`
	Secure        bool          `env:"SESSION_COOKIE_SECURE" env-default:"false"`
	Backend       string        `env:"SESSION_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	RedisAddr     string        `env:"SESSION_REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string        `env:"SESSION_REDIS_PASSWORD"`
	RedisDB       int           `env:"SESSION_REDIS_DB" env-default:"0"`
}

// CacheOptions maps the session config onto cache backend options
func (c *Config) CacheOptions() cache.Options {
	opts := cache.Options{Backend: c.Backend}
	if c.Backend == cache.RedisBackend {
		opts.Redis = &cache.RedisOptions{
			Addr:         c.RedisAddr,
			Password:     c.RedisPassword,
			DB:           c.RedisDB,
			PoolSize:     10,
			MinIdleConns: 1,
			MaxRetries:   1,
			OpTimeout:    100 * time.Millisecond,
			KeyPrefix:    "atlas:",
		}
	}
	return opts
}

// State is everything remembered about one visitor.
type State struct {
	Theme    string `json:"theme"`
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// Session is the state of the current request plus its id.
type Session struct {
	ID    string
	State State
	isNew bool
}

// IsNew reports whether the session was created by this request
func (s *Session) IsNew() bool {
	return s.isNew
}

// Manager loads and saves sessions.
type Manager struct {
	store  cache.Cache[State]
	cfg    Config
	logger logger.Logger
}

// NewManager creates a session manager over store
func NewManager(store cache.Cache[State], cfg Config, log logger.Logger) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = "atlas_session"
	}
	return &Manager{store: store, cfg: cfg, logger: log}
}

// Load returns the session for id, or a fresh one when id is empty or unknown.
func (m *Manager) Load(ctx context.Context, id string) *Session {
	if id != "" {
		state, err := m.store.Get(ctx, keyPrefix+id)
		if err == nil {
			return &Session{ID: id, State: state}
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			m.logger.Error(err, map[string]interface{}{"op": "session.load"})
		}
	}
	return &Session{ID: uuid.NewString(), isNew: true}
}

// Save stores the session state for another TTL period
func (m *Manager) Save(ctx context.Context, s *Session) error {
	return m.store.Set(ctx, keyPrefix+s.ID, s.State, m.cfg.TTL)
}

// Middleware attaches the visitor's session to the gin context and saves it
// once the handler chain has run.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(m.cfg.CookieName)
		s := m.Load(c.Request.Context(), id)
		if s.IsNew() {
			m.logger.Debug("session started", map[string]interface{}{"path": c.Request.URL.Path})
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cfg.CookieName, s.ID, int(m.cfg.TTL.Seconds()), "/", "", m.cfg.Secure, true)
		c.Set(contextKey, s)

		c.Next()

		if err := m.Save(c.Request.Context(), s); err != nil {
			m.logger.Error(err, map[string]interface{}{"op": "session.save"})
		}
	}
}

// FromContext returns the session attached by Middleware. Without the
// middleware a throwaway session is returned so handlers never see nil.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return &Session{isNew: true}
}
