package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmem "nexstock/internal/catalog/repository/memory"
	catalogUC "nexstock/internal/catalog/usecase"
	"nexstock/internal/report/repository/memory"
	"nexstock/internal/report/usecase"
	"nexstock/pkg/log"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	items := catalogUC.New(catalogmem.New(l, true), nil, l)
	uc := usecase.New(memory.New(), items, nil, "", l)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc))
	return r
}

func get(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestSales_RendersMoneyToCents(t *testing.T) {
	w := get(newTestRouter(), http.MethodGet, "/api/v1/reports/sales")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"totalRevenue":19550.00`)
	assert.Contains(t, body, `"avgOrderValue":143.75`)
	assert.Contains(t, body, `"grossProfit":8211.00`)
	assert.Contains(t, body, `{"date":"Mon","revenue":4000.00,"orders":24,"profit":1600.00,"expenses":2400.00}`)
}

func TestDashboard(t *testing.T) {
	w := get(newTestRouter(), http.MethodGet, "/api/v1/reports/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lowStockCount":3`)
	assert.Contains(t, w.Body.String(), `"totalValue":45707.13`)
}

func TestInventory(t *testing.T) {
	w := get(newTestRouter(), http.MethodGet, "/api/v1/reports/inventory")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"name":"Home","value":5250.00}`)
}

func TestExport_NotConfigured(t *testing.T) {
	w := get(newTestRouter(), http.MethodPost, "/api/v1/reports/inventory/export")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
