package web

import (
	"html/template"
	"net/http"

	"tasklist/config"
	assets "tasklist/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Controller serves the index page and static assets.
type Controller struct {
	config *config.Config
	tmpl   *template.Template
	static http.FileSystem
}

// NewController loads templates and assets from the configured directories or the embedded copies.
func NewController(cfg *config.Config) (*Controller, error) {
	tmpl, err := assets.Templates(cfg.Web.TemplateDir)
	if err != nil {
		return nil, err
	}
	static, err := assets.Static(cfg.Web.StaticDir)
	if err != nil {
		return nil, err
	}
	return &Controller{config: cfg, tmpl: tmpl, static: static}, nil
}

// RegisterRoutes Register page routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.Index)
	router.StaticFS("/static", c.static)
}

// Index renders the single page of the application.
func (c *Controller) Index(ctx *gin.Context) {
	ctx.Render(http.StatusOK, render.HTML{
		Template: c.tmpl,
		Name:     assets.IndexTemplate,
		Data: gin.H{
			"Name":    c.config.App.Name,
			"Version": c.config.App.Version,
		},
	})
}
