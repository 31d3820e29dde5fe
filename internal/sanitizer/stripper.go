package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLStripperer cleans text before it is displayed
type HTMLStripperer interface {
	StripHTML(s string) string
	PlainText(s string) string
}

var _ HTMLStripperer = (*HTMLStripper)(nil)

type HTMLStripper struct {
	bm *bluemonday.Policy
}

// NewHTMLStripper return a new instance of blue monday policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

// StripHTML removes every tag; entities are left escaped.
func (hs *HTMLStripper) StripHTML(s string) string {
	return hs.bm.Sanitize(s)
}

// PlainText removes every tag and decodes entities, so the result can go
// through html/template without being escaped twice.
func (hs *HTMLStripper) PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(hs.StripHTML(s)))
}
