package api

import (
	"tasklist/api/middleware"
	"tasklist/api/response"
	"tasklist/config"
	"tasklist/domain/shared"

	"github.com/gin-gonic/gin"
)

// ControllerRegister is implemented by every controller.
type ControllerRegister interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// Route is an extra handler registered outside any controller.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Router Route configuration
type Router struct {
	engine       *gin.Engine
	config       *config.Config
	controllers  []ControllerRegister
	pages        []ControllerRegister
	customRoutes []Route
}

// NewRouter builds the engine and its middleware chain.
// controllers are mounted under /api, pages at the root.
func NewRouter(
	cfg *config.Config,
	controllers []ControllerRegister,
	pages []ControllerRegister,
	middlewares []gin.HandlerFunc,
	customRoutes []Route,
) *Router {
	switch {
	case gin.Mode() == gin.TestMode:
	case cfg.IsDevelopment():
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	response.UseJSONFieldNames()

	engine := gin.New()
	// task ids are caller supplied and may contain escaped slashes
	engine.UseRawPath = true

	// order matters: request id first so every later stage can log it,
	// recovery inside logging so a panicking request still gets its access line
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))
	engine.Use(middlewares...)

	return &Router{
		engine:       engine,
		config:       cfg,
		controllers:  controllers,
		pages:        pages,
		customRoutes: customRoutes,
	}
}

// SetupRoutes Set up all routes
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api")
	for _, c := range r.controllers {
		c.RegisterRoutes(apiGroup)
	}

	for _, p := range r.pages {
		p.RegisterRoutes(&r.engine.RouterGroup)
	}

	for _, route := range r.customRoutes {
		r.engine.Handle(route.Method, route.Path, route.Handler)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		response.HandleAppError(c, shared.NewNotFoundError("route"))
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
