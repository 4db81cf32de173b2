package handlers_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"house-rental-backend/internal/api/handlers"
	"house-rental-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageRouter(t *testing.T) *testutils.HTTPTestSuite {
	t.Helper()
	root := t.TempDir()
	publicDir := filepath.Join(root, "public")
	viewsDir := filepath.Join(root, "views")
	require.NoError(t, os.MkdirAll(filepath.Join(publicDir, "css"), 0o755))
	require.NoError(t, os.MkdirAll(viewsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<h1>home</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "display.html"), []byte("<h1>dashboard</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "css", "site.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(viewsDir, "houses.html"), []byte("<h1>houses</h1>"), 0o644))

	handler := handlers.NewPageHandler(publicDir, viewsDir)
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/houses", handler.Houses)
	httpSuite.Router.GET("/owner-requests", handler.OwnerRequests)
	httpSuite.Router.NoRoute(handler.Static)
	return httpSuite
}

func TestPageHandler(t *testing.T) {
	httpSuite := newPageRouter(t)

	t.Run("houses view", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/houses", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "houses")
	})

	t.Run("missing view", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/owner-requests", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Page not found")
	})

	t.Run("static file", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/display.html", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "dashboard")
	})

	t.Run("nested static file", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/css/site.css", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "body{}", recorder.Body.String())
	})

	t.Run("root serves index", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "home")
	})

	t.Run("path traversal", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/../secret.txt", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/nope.html", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Endpoint not found")
	})

	t.Run("non-GET is not served", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodPost, "/display.html", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
