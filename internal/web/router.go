// Package web serves the portfolio page and the HTMX fragments that drive
// section navigation and the contact form.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ranjanoa/portfolio/internal/contact"
	"github.com/ranjanoa/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Server holds what the handlers render and where contact messages go.
type Server struct {
	page      *content.Page
	submitter contact.Submitter
}

// NewRouter wires middleware, templates, static assets and routes.
func NewRouter(page *content.Page, submitter contact.Submitter) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	s := &Server{page: page, submitter: submitter}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(newIPHasher()))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.index)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	navGroup := r.Group("/nav")
	navGroup.GET("/init", s.navInit)
	navGroup.GET("/go", s.navGo)
	navGroup.GET("/toggle", s.navToggle)

	r.POST("/contact", s.contact)

	return r, nil
}
