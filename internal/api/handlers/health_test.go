package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"house-rental-backend/internal/api/handlers"
	"house-rental-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	t.Run("healthy", func(t *testing.T) {
		handler := handlers.NewHealthHandler(db, map[string]handlers.HealthCheck{
			"image_store": func(ctx context.Context) error { return nil },
		})
		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.GET("/health", handler.Health)
		httpSuite.Router.GET("/health/ready", handler.Ready)
		httpSuite.Router.GET("/health/live", handler.Live)

		var health handlers.HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &health)
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "healthy", health.Services["database"])
		assert.Equal(t, "healthy", health.Services["image_store"])

		var ready map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusOK, &ready)
		assert.Equal(t, true, ready["ready"])

		var live map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &live)
		assert.Equal(t, true, live["alive"])
	})

	t.Run("failing check", func(t *testing.T) {
		handler := handlers.NewHealthHandler(db, map[string]handlers.HealthCheck{
			"message_broker": func(ctx context.Context) error { return errors.New("connection closed") },
		})
		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.GET("/health", handler.Health)
		httpSuite.Router.GET("/health/ready", handler.Ready)

		var health handlers.HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &health)
		assert.Equal(t, "unhealthy", health.Status)
		assert.Equal(t, "error: connection closed", health.Services["message_broker"])
		assert.Equal(t, "healthy", health.Services["database"])

		var ready map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &ready)
		assert.Equal(t, false, ready["ready"])
	})
}
