package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/atlas/internal/logger"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Info(message string, properties map[string]interface{}) {
	m.Called(message, properties)
}
func (m *mockLogger) Error(err error, properties map[string]interface{}) { m.Called(err, properties) }
func (m *mockLogger) Fatal(err error, properties map[string]interface{}) { m.Called(err, properties) }
func (m *mockLogger) Debug(message string, properties map[string]interface{}) {
	m.Called(message, properties)
}
func (m *mockLogger) SetLevel(logger.Level) {}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", HealthCheck("test"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","environment":"test","version":"1.0.0"}`, w.Body.String())
}

func TestCorsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CorsMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logs success at info", func(t *testing.T) {
		log := new(mockLogger)
		log.On("Info", "request", mock.MatchedBy(func(f map[string]interface{}) bool {
			return f["path"] == "/ok" && f["status"] == http.StatusOK && f["query"] == "q=pak"
		})).Once()

		r := gin.New()
		r.Use(RequestLogger(log))
		r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?q=pak", nil))
		log.AssertExpectations(t)
	})

	t.Run("logs handler errors", func(t *testing.T) {
		log := new(mockLogger)
		boom := errors.New("boom")
		log.On("Error", mock.Anything, mock.Anything).Once()

		r := gin.New()
		r.Use(RequestLogger(log))
		r.GET("/fail", func(c *gin.Context) {
			_ = c.Error(boom)
			c.Status(http.StatusInternalServerError)
		})

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
		log.AssertExpectations(t)
	})
}
