package bootstrap_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/changhyeonkim/project-board/go-api-server/internal/bootstrap"
	sharedError "github.com/changhyeonkim/project-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()

	engine := bootstrap.NewBootstrap(testutil.NewTestConfig()).SetupEngine()
	engine.GET("/articles", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return engine
}

func TestSetupEngine(t *testing.T) {
	engine := newEngine(t)

	t.Run("panic becomes internal server error", func(t *testing.T) {
		w := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/panic"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp sharedError.ErrorResponse
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, sharedError.InternalServerError.Code, resp.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodPut, URL: "/articles"})

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("normal request carries request id", func(t *testing.T) {
		w := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
			Method:  http.MethodGet,
			URL:     "/articles",
			Headers: map[string]string{middleware.RequestIDHeader: "board-req"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "board-req", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestServer_Serve(t *testing.T) {
	// Given
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	closed := 0
	closeErr := errors.New("close failed")
	srv := bootstrap.NewServer(testutil.NewTestConfig(), newEngine(t),
		func() error { closed++; return nil },
		func() error { closed++; return closeErr },
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	// When
	resp, err := http.Get("http://" + listener.Addr().String() + "/articles")
	require.NoError(t, err)
	_ = resp.Body.Close()
	cancel()

	// Then
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	select {
	case err := <-done:
		assert.ErrorIs(t, err, closeErr)
		assert.Equal(t, 2, closed)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
