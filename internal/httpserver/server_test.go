package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexstock/internal/middleware"
	"nexstock/pkg/llmprovider"
	"nexstock/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		LLM:         llmprovider.NewManager(nil, nil, l),
		RateLimit:   middleware.RateLimitConfig{RequestsPerMin: 100},
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	return srv
}

func do(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNew_Validate(t *testing.T) {
	l := log.NewNop()
	llm := llmprovider.NewManager(nil, nil, l)

	_, err := New(l, Config{Mode: gin.TestMode, LLM: llm})
	assert.EqualError(t, err, "port is required")

	_, err = New(l, Config{Port: 8080, Mode: gin.TestMode})
	assert.EqualError(t, err, "llm is required")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := do(srv, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"service":"nexstock"`)
		})
	}
}

func TestDomainRoutes_Wired(t *testing.T) {
	srv := newTestServer(t)

	paths := []string{
		"/api/v1/products",
		"/api/v1/warehouses",
		"/api/v1/reports/dashboard",
		"/api/v1/suppliers",
		"/api/v1/shipments",
		"/api/v1/staff",
		"/api/v1/tasks",
		"/api/v1/payroll",
		"/api/v1/forecasts/in-flight",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := do(srv, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		})
	}
}

func TestAssistant_DegradedWithoutProvider(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodPost, "/api/v1/assistant/sessions/s1/ask", `{"query":"show low stock"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"degraded":true`)
}

func TestReportExport_NotConfigured(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodPost, "/api/v1/reports/inventory/export", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
