package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PagesHandler renders the HTML pages, degrading to plain text when a
// template is missing
type PagesHandler struct {
	templates map[string]bool
}

// NewPagesHandler scans the template glob and records which pages are
// renderable. Missing templates are not an error.
func NewPagesHandler(templateGlob string) *PagesHandler {
	templates := make(map[string]bool)
	matches, err := filepath.Glob(templateGlob)
	if err == nil {
		for _, m := range matches {
			templates[filepath.Base(m)] = true
		}
	}
	return &PagesHandler{templates: templates}
}

// HasTemplates returns whether any page templates were found
func (h *PagesHandler) HasTemplates() bool {
	return len(h.templates) > 0
}

// Home handles GET /
func (h *PagesHandler) Home(c *gin.Context) {
	if h.templates["index.html"] {
		c.HTML(http.StatusOK, "index.html", nil)
		return
	}
	c.String(http.StatusOK, "✅ Rentello backend running (index.html not found)")
}

// Dashboard handles GET /dashboard
func (h *PagesHandler) Dashboard(c *gin.Context) {
	if h.templates["dashboard.html"] {
		c.HTML(http.StatusOK, "dashboard.html", nil)
		return
	}
	c.String(http.StatusOK, "Dashboard page not found")
}
