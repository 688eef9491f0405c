package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/changhyeonkim/project-board/go-api-server/internal/config"
	sharedContext "github.com/changhyeonkim/project-board/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/project-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares...)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")

		w := serve(router, req)

		assert.Equal(t, "req-123", w.Body.String())
		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("generates uuid when missing", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))

		_, err := uuid.Parse(w.Body.String())
		assert.NoError(t, err)
		assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))

		w := serve(router, req)

		_, err := uuid.Parse(w.Body.String())
		assert.NoError(t, err)
	})
}

func TestAuditor(t *testing.T) {
	router := newRouter(Auditor("uno"))
	router.GET("/whoami", func(c *gin.Context) {
		auditor, _ := sharedContext.AuditorFromContext(c.Request.Context())
		c.String(http.StatusOK, auditor)
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, "uno", w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(AuditorHeader, "  admin  ")
	w = serve(router, req)
	assert.Equal(t, "admin", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(AuditorHeader, "   ")
	w = serve(router, req)
	assert.Equal(t, "uno", w.Body.String())
}

func TestTimeout(t *testing.T) {
	router := newRouter(Timeout(20 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
		assert.True(t, IsTimeout(c))
	})
	router.GET("/fast", func(c *gin.Context) {
		assert.False(t, IsTimeout(c))
		c.Status(http.StatusNoContent)
	})

	t.Run("deadline without response", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp sharedError.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, RequestTimeoutResponse.Code, resp.Code)
	})

	t.Run("completes in time", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/fast", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{CORS: config.CORSConfig{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	}}
	router := newRouter(CORS(cfg))
	router.GET("/articles", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Expose-Headers")), strings.ToLower(RequestIDHeader))
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() {
		slog.SetDefault(previous)
	})

	router := newRouter(RequestID(), Auditor("uno"), LoggerMiddleware())
	router.GET("/articles/:articleId", func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNotFound)
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/articles/7?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-log")
	serve(router, req)

	out := buf.String()
	assert.Contains(t, out, "msg=\"inside handler\" request_id=req-log")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "route=/articles/:articleId")
	assert.Contains(t, out, "auditor=uno")
	assert.Contains(t, out, `query="x=1"`)

	buf.Reset()
	serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())
}
