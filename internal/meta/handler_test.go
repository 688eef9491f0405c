package meta_test

import (
	"net/http"
	"testing"

	"github.com/changhyeonkim/project-board/go-api-server/internal/meta"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthResponse struct {
	Status  string         `json:"status"`
	Service map[string]any `json:"service"`
	Checks  struct {
		Database map[string]any `json:"database"`
	} `json:"checks"`
}

func TestHealth(t *testing.T) {
	cfg := testutil.NewTestConfig()

	t.Run("healthy", func(t *testing.T) {
		// Given
		router := testutil.SetupTestRouter()
		router.GET("/health", meta.NewHandler(cfg, testutil.SetupTestDatabase(t)).Health)

		// When
		w := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

		// Then
		require.Equal(t, http.StatusOK, w.Code)
		var resp healthResponse
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, cfg.App.Name, resp.Service["name"])
		assert.Equal(t, "up", resp.Checks.Database["status"])
		assert.Equal(t, "sqlite", resp.Checks.Database["driver"])
	})

	t.Run("database down", func(t *testing.T) {
		// Given
		gormDB := testutil.SetupTestDB(t)
		sqlDB, err := gormDB.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		router := testutil.SetupTestRouter()
		router.GET("/health", meta.NewHandler(cfg, database.Wrap(gormDB, "sqlite")).Health)

		// When
		w := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

		// Then
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp healthResponse
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "down", resp.Checks.Database["status"])
		assert.NotEmpty(t, resp.Checks.Database["error"])
	})
}
