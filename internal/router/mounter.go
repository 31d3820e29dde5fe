package router

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/internal/deps"
)

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container}
}

// Web routes render HTML pages and carry the visitor session
func (m *Mounter) Web(engine *gin.Engine) *RouteGroup {
	group := engine.Group("/")
	if m.container.Sessions != nil {
		group.Use(m.container.Sessions.Middleware())
	}
	return &RouteGroup{group: group, container: m.container}
}

// API routes live under /api/v1
func (m *Mounter) API(engine *gin.Engine) *RouteGroup {
	group := engine.Group("/api/v1")
	if m.container.Sessions != nil {
		group.Use(m.container.Sessions.Middleware())
	}
	return &RouteGroup{group: group, container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules
func (rg *RouteGroup) Mount(mountFunc MountFunc) *RouteGroup {
	mountFunc(rg.group, rg.container)
	return rg
}

// Group creates a sub-group for organizing routes
func (rg *RouteGroup) Group(path string) *RouteGroup {
	subGroup := rg.group.Group(path)
	return &RouteGroup{group: subGroup, container: rg.container}
}

// Use adds middleware to the group
func (rg *RouteGroup) Use(middleware ...gin.HandlerFunc) *RouteGroup {
	rg.group.Use(middleware...)
	return rg
}
