package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"house-rental-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the HTML views and the static frontend
type PageHandler struct {
	publicDir string
	viewsDir  string
}

// NewPageHandler creates a new page handler
func NewPageHandler(publicDir, viewsDir string) *PageHandler {
	return &PageHandler{
		publicDir: publicDir,
		viewsDir:  viewsDir,
	}
}

// Houses handles GET /houses
func (h *PageHandler) Houses(c *gin.Context) {
	h.serveView(c, "houses.html")
}

// OwnerRequests handles GET /owner-requests
func (h *PageHandler) OwnerRequests(c *gin.Context) {
	h.serveView(c, "requested.html")
}

// Static serves files from the public directory for any unmatched GET or HEAD request
// and answers everything else with a JSON 404.
func (h *PageHandler) Static(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		if file, ok := h.resolve(c.Request.URL.Path); ok {
			c.File(file)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"error":      "Endpoint not found",
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString(logger.RequestIDKey),
	})
}

func (h *PageHandler) serveView(c *gin.Context, name string) {
	file := filepath.Join(h.viewsDir, name)
	if info, err := os.Stat(file); err != nil || info.IsDir() {
		logger.WithContext(c).Warnf("view %s not found", file)
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.File(file)
}

// resolve maps a URL path to a regular file below publicDir. Directories resolve to their index.html.
func (h *PageHandler) resolve(urlPath string) (string, bool) {
	if h.publicDir == "" {
		return "", false
	}

	// Cleaning against "/" keeps the result inside publicDir.
	file := filepath.Join(h.publicDir, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(file)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		file = filepath.Join(file, "index.html")
		if info, err = os.Stat(file); err != nil {
			return "", false
		}
	}
	if !info.Mode().IsRegular() {
		return "", false
	}
	return file, true
}
