package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/nexus"
	"github.com/joefazee/atlas/internal/session"
)

const upstreamAll = `[
	{"name":{"common":"Pakistan","official":"Islamic Republic of Pakistan"},"cca2":"PK","ccn3":"586","capital":["Islamabad"],"region":"Asia","flags":{"png":"pk.png"}},
	{"name":{"common":"Chad","official":"Republic of Chad"},"cca2":"TD","ccn3":"148","capital":["N'Djamena"],"region":"Africa","flags":{"png":"td.png"}}
]`

func newTestServer(t *testing.T) (*gin.Engine, *int32) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var listCalls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v3.1/all":
			atomic.AddInt32(&listCalls, 1)
			_, _ = w.Write([]byte(upstreamAll))
		case strings.HasPrefix(r.URL.Path, "/v3.1/alpha/"):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstream.Close)

	t.Setenv("RESTCOUNTRIES_BASE_URL", upstream.URL+"/v3.1")
	t.Setenv("APP_ENV", "test")
	cfg, err := LoadConfig(nexus.WithOnlyEnvironment())
	require.NoError(t, err)

	store := cache.NewMemoryCacheWithOptions[session.State](4, time.Hour)
	t.Cleanup(store.Stop)

	container := NewContainer(cfg, logger.NewNullLogger(), store)
	engine := NewRouter(cfg, container)

	svc := container.GetService(countries.ServiceKey).(countries.Service)
	require.NotNil(t, svc)
	return engine, &listCalls
}

func get(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nexus.WithOnlyEnvironment())
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "https://restcountries.com/v3.1", cfg.RestCountries.BaseURL)
	assert.Contains(t, cfg.RestCountries.ListFields, "ccn3")
	assert.LessOrEqual(t, len(cfg.RestCountries.ListFields), 10)
	assert.Equal(t, "atlas_session", cfg.Session.CookieName)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, "PKR", cfg.Countries.DetailCurrencyCode)
	assert.Equal(t, "urd", cfg.Countries.DetailLanguage)
	assert.Equal(t, 8, cfg.Countries.SkeletonCount)
	assert.Equal(t, logger.LevelInfo, cfg.Level())
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "memcached")
	_, err := LoadConfig(nexus.WithOnlyEnvironment())
	require.Error(t, err)
	assert.Contains(t, err.Error(), nexus.ErrCodeValidation)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Env: "production", LogLevel: "info"}, &buf)
	log.Info("hello", nil)
	assert.Contains(t, buf.String(), `"app":"atlas"`)
}

func TestRouter_EndToEnd(t *testing.T) {
	engine, listCalls := newTestServer(t)

	w := get(engine, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"environment":"test"`)

	// First hit starts the fetch; poll until the catalog answers.
	deadline := time.Now().Add(2 * time.Second)
	for {
		w = get(engine, "/api/v1/countries?q=chad")
		if w.Code == http.StatusOK || time.Now().After(deadline) {
			break
		}
		assert.Equal(t, http.StatusAccepted, w.Code)
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"detail_url":"/countriesApi/148"`)

	w = get(engine, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Showing 1-2 of 2 countries")
	assert.EqualValues(t, 1, atomic.LoadInt32(listCalls))

	w = get(engine, "/countriesApi/586")
	assert.Equal(t, http.StatusOK, w.Code, "detail failures still render")

	w = get(engine, "/api/v1/countries/586")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = get(engine, "/api/v1/themes")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"current":"light"`)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/countries", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

}
