package theme

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/session"
)

// Handler handles theme selection requests
type Handler struct {
	logger logger.Logger
}

// NewHandler creates a new theme handler
func NewHandler(log logger.Logger) *Handler {
	return &Handler{logger: log}
}

// SetTheme stores the picked theme and sends the visitor back where they came from.
// Unknown themes leave the current selection untouched.
func (h *Handler) SetTheme(c *gin.Context) {
	sess := session.FromContext(c)
	store := FromSession(sess)

	var req SetThemeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Debug("theme change rejected", map[string]interface{}{"error": err.Error()})
	} else if err := store.Set(req.Theme); err != nil {
		h.logger.Debug("theme change rejected", map[string]interface{}{"error": err.Error()})
	}
	store.Save(sess)

	c.Redirect(http.StatusSeeOther, backTo(c))
}

// GetThemes godoc
// @Summary List themes
// @Description Get the available themes, their styles and the caller's current theme
// @Tags themes
// @Produce json
// @Success 200 {object} api.Response{data=CatalogResponse}
// @Router /api/v1/themes [get]
func (h *Handler) GetThemes(c *gin.Context) {
	store := FromSession(session.FromContext(c))
	api.ListResponse(c, "Themes retrieved successfully", catalog(store), len(Names))
}

// UpdateTheme godoc
// @Summary Set theme
// @Description Select the caller's theme for the rest of the session
// @Tags themes
// @Accept json
// @Produce json
// @Param request body SetThemeRequest true "Theme"
// @Success 200 {object} api.Response{data=CatalogResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/theme [put]
func (h *Handler) UpdateTheme(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	sess := session.FromContext(c)
	store := FromSession(sess)
	if err := store.Set(req.Theme); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	store.Save(sess)

	api.UpdatedResponse(c, "Theme updated successfully", catalog(store))
}

func catalog(store *Store) CatalogResponse {
	return CatalogResponse{Current: store.Current(), Themes: Options()}
}

// backTo returns the local path of the referring page, or "/".
func backTo(c *gin.Context) string {
	ref := c.GetHeader("Referer")
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Request.Host) {
		return "/"
	}
	if u.Path == "" || u.Path[0] != '/' {
		return "/"
	}
	return u.RequestURI()
}
