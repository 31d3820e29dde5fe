package theme

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/internal/deps"
)

// MountWeb mounts the theme picker form target
func MountWeb(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(container.Logger)
	r.POST("/theme", handler.SetTheme)
}

// MountAPI mounts the JSON theme routes
func MountAPI(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(container.Logger)
	r.GET("/themes", handler.GetThemes)
	r.PUT("/theme", handler.UpdateTheme)
}
