package testutil

import (
	"time"

	"github.com/changhyeonkim/project-board/go-api-server/internal/config"
)

// NewTestConfig creates a test configuration backed by in-memory SQLite.
// This removes the need for environment variables during testing.
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:           "project-board-api-test",
			Env:            "test",
			Port:           8080,
			DefaultAuditor: TestAuditor,
		},
		Database: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			SQLitePath:      ":memory:",
			MaxIdleConns:    1,
			MaxOpenConns:    1,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			RequestTimeout:  5 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
		Pagination: config.PaginationConfig{
			DefaultSize: 10,
			MaxSize:     100,
		},
	}
}
