package doc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/joefazee/atlas/docs"
)

func TestInit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Init(r)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	req.Host = "atlas.test:9000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var spec map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spec))
	assert.Equal(t, "atlas.test:9000", spec["host"])

	paths, ok := spec["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/v1/countries")
	assert.Contains(t, paths, "/api/v1/countries/{id}")
	assert.Contains(t, paths, "/api/v1/themes")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/swagger/doc.json")
}
