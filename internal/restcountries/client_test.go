package restcountries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/atlas/models"
)

const allResponse = `[
	{"name":{"common":"Pakistan","official":"Islamic Republic of Pakistan"},"ccn3":"586","cca3":"PAK","capital":["Islamabad"],"region":"Asia","flags":{"png":"pk.png"}},
	{"name":{"common":"Chad","official":"Republic of Chad"},"ccn3":"148","cca3":"TCD","capital":["N'Djamena"],"region":"Africa","flags":{"png":"td.png"}}
]`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:    srv.URL + "/v3.1/",
		Timeout:    time.Second,
		ListFields: []string{"name", "ccn3", "flags"},
	}, nil)
}

func TestClient_All(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/v3.1/all", r.URL.Path)
		assert.Equal(t, "name,ccn3,flags", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(allResponse))
	})

	countries, err := c.All(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Pakistan", countries[0].CommonName())
	assert.Equal(t, "148", countries[1].Identifier())
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestClient_ByCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/alpha/586", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name":{"common":"Pakistan","official":"Islamic Republic of Pakistan"},"ccn3":"586"}]`))
	})

	country, err := c.ByCode(context.Background(), "586")
	require.NoError(t, err)
	assert.Equal(t, "Islamic Republic of Pakistan", country.OfficialName())
}

func TestClient_ByCodeEmptyArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	country, err := c.ByCode(context.Background(), "999")
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
	assert.Nil(t, country)
}

func TestClient_UpstreamStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"Not Found"}`))
	})

	_, err := c.ByCode(context.Background(), "000")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUpstream)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := c.All(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse country data")
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second}, nil)
	_, err := c.All(context.Background())
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestClient_PathEscapesCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/alpha/a%2Fb", r.URL.RawPath)
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ByCode(context.Background(), "a/b")
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}
