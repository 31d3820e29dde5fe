package theme

// SetThemeRequest is the theme picker form
type SetThemeRequest struct {
	Theme string `form:"theme" json:"theme" binding:"required,oneof=light dark green blue"`
}

// Option describes one selectable theme
type Option struct {
	Name  Name   `json:"name"`
	Label string `json:"label"`
	Style Style  `json:"style"`
}

// CatalogResponse lists the themes and the visitor's current one
type CatalogResponse struct {
	Current Name     `json:"current"`
	Themes  []Option `json:"themes"`
}

// Options returns every theme in picker order
func Options() []Option {
	opts := make([]Option, 0, len(Names))
	for _, n := range Names {
		opts = append(opts, Option{Name: n, Label: n.Label(), Style: n.Style()})
	}
	return opts
}
