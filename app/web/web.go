// Package web holds the HTML templates and the page data shared by every view.
package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/theme"
	"github.com/joefazee/atlas/internal/session"
)

//go:embed templates/*.html
var files embed.FS

// Template names
const (
	ListPage    = "list.html"
	LoadingPage = "loading.html"
	DetailPage  = "detail.html"
)

var funcs = template.FuncMap{
	"add": func(a, b int) int {
		return a + b
	},
	"sub": func(a, b int) int {
		return a - b
	},
	"seq": func(n int) []int {
		result := make([]int, n)
		for i := range result {
			result[i] = i
		}
		return result
	},
	"join": strings.Join,
	"css": func(s string) template.CSS {
		return template.CSS(s)
	},
}

// Templates parses every embedded page and partial into one set
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// MustTemplates is Templates for program start-up
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Page is the data every template receives
type Page struct {
	Title   string
	Path    string
	Theme   theme.Name
	Style   theme.Style
	Themes  []theme.Option
	Refresh int
	Data    interface{}
}

// NewPage builds the page data for the current visitor
func NewPage(c *gin.Context, title string, data interface{}) Page {
	store := theme.FromSession(session.FromContext(c))
	return Page{
		Title:  title,
		Path:   c.Request.URL.RequestURI(),
		Theme:  store.Current(),
		Style:  store.Style(),
		Themes: theme.Options(),
		Data:   data,
	}
}

// BaseStyle is the inline style of the page container
func (p Page) BaseStyle() template.CSS {
	return template.CSS(p.Style.CSS())
}
