package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexstock/internal/shipment/repository/memory"
	"nexstock/internal/shipment/usecase"
	"nexstock/pkg/log"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, usecase.New(memory.New(l), l)))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreate(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/api/v1/shipments",
		`{"trackingId":"TRK-123456","type":"Outbound","status":"In Transit","value":1250.5,"estimatedDelivery":"2024-11-02","progress":10}`)
	require.Equal(t, http.StatusCreated, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"value":1250.50`)
	assert.Contains(t, body, `"estimatedDelivery":"2024-11-02"`)

	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/api/v1/shipments", `{"trackingId":"TRK-123456"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/v1/shipments", `{"progress":150}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/v1/shipments", `{"status":"Lost"}`).Code)
}

func TestStatsAndList(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/api/v1/shipments/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inTransit":2,"delayed":1,"delivered":1`)

	w = do(r, http.MethodGet, "/api/v1/shipments?status=In%20Transit", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, strings.Count(w.Body.String(), `"trackingId"`))
}

func TestUpdateDelete(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPut, "/api/v1/shipments/SHP-005", `{"status":"In Transit","progress":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"progress":5`)

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/v1/shipments/SHP-005", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/v1/shipments/SHP-005", "").Code)
}
