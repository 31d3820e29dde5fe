package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/atlas/app/theme"
	"github.com/joefazee/atlas/internal/session"
)

type card struct {
	ID, Name, Capital, Region, FlagURL, FlagAlt, DetailURL string
}

type view struct {
	Items                             []card
	Page, PageSize, Total, TotalPages int
	From, To                          int
	Pages                             []int
	HasPrev, HasNext                  bool
}

type listData struct {
	View      view
	Search    string
	PageSizes []int
}

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{ListPage, LoadingPage, DetailPage, "header", "footer", "theme-picker"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestTemplates_Loading(t *testing.T) {
	tmpl := MustTemplates()
	page := Page{Title: "Countries", Style: theme.Light.Style(), Refresh: 2, Data: struct{ Skeletons int }{8}}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, LoadingPage, page))

	out := buf.String()
	assert.Equal(t, 8, strings.Count(out, "data-skeleton"))
	assert.Contains(t, out, `http-equiv="refresh" content="2"`)
	assert.Contains(t, out, "Loading amazing countries for you...")
}

func TestTemplates_ListEmpty(t *testing.T) {
	tmpl := MustTemplates()
	page := Page{Themes: theme.Options(), Data: listData{View: view{Page: 1, PageSize: 8, Pages: []int{}}, Search: "zzz", PageSizes: []int{8, 12, 16, 24}}}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, ListPage, page))

	out := buf.String()
	assert.Contains(t, out, "No countries found")
	assert.Contains(t, out, "Try adjusting your search criteria")
	assert.Contains(t, out, "Showing 0-0 of 0 countries")
	assert.NotContains(t, out, "data-pagination")
	assert.NotContains(t, out, "per page")
}

func TestTemplates_ListWithItems(t *testing.T) {
	tmpl := MustTemplates()
	v := view{
		Items:      []card{{ID: "586", Name: "Pakistan", Capital: "Islamabad", Region: "Asia", FlagAlt: "Flag of Pakistan", DetailURL: "/countriesApi/586"}},
		Page:       2,
		PageSize:   8,
		Total:      12,
		TotalPages: 2,
		From:       9,
		To:         12,
		Pages:      []int{1, 2},
		HasPrev:    true,
	}
	page := Page{Theme: theme.Dark, Style: theme.Dark.Style(), Themes: theme.Options(), Data: listData{View: v, PageSizes: []int{8, 12, 16, 24}}}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, ListPage, page))

	out := buf.String()
	assert.Contains(t, out, "Showing 9-12 of 12 countries")
	assert.Contains(t, out, `href="/countriesApi/586"`)
	assert.Contains(t, out, "Page 2 of 2")
	assert.Contains(t, out, `href="/?page=1"`)
	assert.Contains(t, out, `<option value="8" selected>`)
	assert.Contains(t, out, "background-color: #1f2937")
	assert.Contains(t, out, `aria-disabled="true">&rsaquo;`)
}

func TestNewPage_UsesSessionTheme(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3", nil)
	c.Set("session", &session.Session{ID: "x", State: session.State{Theme: "green"}})

	page := NewPage(c, "Countries Explorer", nil)

	assert.Equal(t, theme.Green, page.Theme)
	assert.Equal(t, theme.Green.Style(), page.Style)
	assert.Equal(t, "/?page=3", page.Path)
	assert.Len(t, page.Themes, 4)
	assert.Equal(t, "background-color: #dcfce7; color: #14532d;", string(page.BaseStyle()))
}
