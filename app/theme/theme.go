// Package theme holds the visual themes a visitor can pick and the store
// that owns the current selection.
package theme

import (
	"fmt"
	"strings"

	"github.com/joefazee/atlas/models"
)

// Name identifies one of the available themes
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
	Green Name = "green"
	Blue  Name = "blue"

	Default = Light
)

// Names lists every theme in picker order
var Names = []Name{Light, Dark, Green, Blue}

// Style is the set of presentation properties a theme applies
type Style struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Accent     string `json:"accent"`
	Surface    string `json:"surface"`
	Muted      string `json:"muted"`
}

var styles = map[Name]Style{
	Light: {Background: "#ffffff", Foreground: "#1f2937", Accent: "#6366f1", Surface: "#f3f4f6", Muted: "#6b7280"},
	Dark:  {Background: "#1f2937", Foreground: "#f9fafb", Accent: "#818cf8", Surface: "#374151", Muted: "#d1d5db"},
	Green: {Background: "#dcfce7", Foreground: "#14532d", Accent: "#16a34a", Surface: "#bbf7d0", Muted: "#166534"},
	Blue:  {Background: "#dbeafe", Foreground: "#1e3a8a", Accent: "#2563eb", Surface: "#bfdbfe", Muted: "#1e40af"},
}

// Parse validates s as a theme name. Matching ignores case and surrounding space.
func Parse(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := styles[n]; !ok {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidTheme, s)
	}
	return n, nil
}

// Style returns the presentation properties of n; unknown names get the default theme's.
func (n Name) Style() Style {
	if st, ok := styles[n]; ok {
		return st
	}
	return styles[Default]
}

// Label is the display name, e.g. "Dark"
func (n Name) Label() string {
	if n == "" {
		return ""
	}
	return strings.ToUpper(string(n[:1])) + string(n[1:])
}

// CSS renders the base style as an inline style attribute value
func (s Style) CSS() string {
	return fmt.Sprintf("background-color: %s; color: %s;", s.Background, s.Foreground)
}
