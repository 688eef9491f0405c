package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// SetupTestRouter creates a test Gin router with only the auditor middleware,
// so audit columns get TestAuditor unless a request sets X-Auditor
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Register custom validators for testing
	_ = validator.RegisterAll()

	router := gin.New()
	router.Use(middleware.Auditor(TestAuditor))
	return router
}

// TestRequest describes one HTTP request made in tests
type TestRequest struct {
	Method  string
	URL     string
	Body    any
	Headers map[string]string
}

// ExecuteRequest executes a test HTTP request and returns the response.
// A string Body is sent verbatim; anything else is JSON encoded.
func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	switch body := req.Body.(type) {
	case nil:
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	default:
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, bodyReader)
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

// ParseResponse parses the JSON response body into the given struct
func ParseResponse(t *testing.T, recorder *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
}
