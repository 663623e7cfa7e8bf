package http

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/database"
)

func setupHealthConnector(t *testing.T) (*database.Connector, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_health_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	connector := database.NewConnector(config.Database{Path: dbPath})

	cleanup := func() {
		connector.Close()
		os.Remove(dbPath)
	}
	return connector, cleanup
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when database is reachable", func(t *testing.T) {
		connector, cleanup := setupHealthConnector(t)
		defer cleanup()

		controller := NewHealthController(connector, "1.0.0")

		router := gin.New()
		router.GET("/health", controller.Status)

		w := doRequest(router, "GET", "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var health HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "1.0.0", health.Version)
		assert.Equal(t, "ok", health.Checks["database"])
	})

	t.Run("returns unhealthy when the store is unreachable", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		connector := database.NewConnector(config.Database{Path: "/nonexistent-dir/sub/books.db"})

		controller := NewHealthController(connector, "1.0.0")

		router := gin.New()
		router.GET("/health", controller.Status)

		w := doRequest(router, "GET", "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var health HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
		assert.Equal(t, "unhealthy", health.Status)
	})

	t.Run("reports not configured without a connector", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		controller := NewHealthController(nil, "1.0.0")

		router := gin.New()
		router.GET("/health", controller.Status)

		w := doRequest(router, "GET", "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var health HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
		assert.Equal(t, "not configured", health.Checks["database"])
	})
}
