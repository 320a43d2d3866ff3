package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmem "nexstock/internal/catalog/repository/memory"
	catalogUC "nexstock/internal/catalog/usecase"
	"nexstock/internal/warehouse/repository/memory"
	"nexstock/internal/warehouse/usecase"
	"nexstock/pkg/log"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	whRepo := memory.New()
	uc := usecase.New(whRepo, catalogUC.New(catalogmem.New(l, true), whRepo, l), l)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc))
	return r
}

func TestDetail_RendersMoney(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/warehouses/WH-CA", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Warehouse struct {
				Utilization int  `json:"utilization"`
				HighLoad    bool `json:"highLoad"`
			} `json:"warehouse"`
			TotalValue    json.Number `json:"totalValue"`
			LowStockCount int         `json:"lowStockCount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 89, body.Data.Warehouse.Utilization)
	assert.True(t, body.Data.Warehouse.HighLoad)
	// 249.50*12 + 450*5 + 29.99*200
	assert.Equal(t, "11242.00", body.Data.TotalValue.String())
	assert.Equal(t, 1, body.Data.LowStockCount)
}

func TestDetail_NotFound(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/warehouses/WH-XX", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
