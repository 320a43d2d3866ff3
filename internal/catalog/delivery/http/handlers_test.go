package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexstock/internal/catalog/repository/memory"
	"nexstock/internal/catalog/usecase"
	"nexstock/pkg/log"
)

type knownWarehouses map[string]bool

func (k knownWarehouses) Exists(ctx context.Context, id string) (bool, error) { return k[id], nil }

var seededWarehouses = knownWarehouses{"WH-NY": true, "WH-CA": true, "WH-TX": true}

func newTestRouter() *gin.Engine {
	return newTestRouterWith(seededWarehouses)
}

func newTestRouterWith(warehouses knownWarehouses) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	uc := usecase.New(memory.New(l, true), warehouses, l)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestList(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/api/v1/products?low_stock=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body listResp
	decode(t, w, &body)
	assert.Equal(t, 3, body.Total)
	for _, item := range body.Items {
		assert.Equal(t, "Low Stock", string(item.Status))
	}
}

func TestList_IDs(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/api/v1/products?ids=2,%204", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body listResp
	decode(t, w, &body)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "2", body.Items[0].ID)
	assert.Equal(t, "4", body.Items[1].ID)
}

func TestCreate(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/api/v1/products",
		`{"name":"Desk Lamp","category":"Home","sku":"DL-1","price":19.5,"stock":1,"minStock":3,"warehouseId":"WH-NY"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body itemEnvelope
	decode(t, w, &body)
	assert.Equal(t, "Desk Lamp", body.Item.Name)
	assert.Equal(t, "Low Stock", string(body.Item.Status))
	assert.Equal(t, "WH-NY", body.Item.WarehouseID)
}

func TestCreate_Errors(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing name", `{"category":"Home"}`, http.StatusBadRequest},
		{"malformed json", `{"name":`, http.StatusBadRequest},
		{"negative stock", `{"name":"x","stock":-1}`, http.StatusBadRequest},
		{"unknown warehouse", `{"name":"x","warehouseId":"WH-MARS"}`, http.StatusBadRequest},
		{"duplicate sku", `{"name":"x","sku":"WH-001"}`, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/products", tt.body)
			assert.Equal(t, tt.code, w.Code)
			env := decode(t, w, nil)
			assert.NotZero(t, env.ErrorCode)
		})
	}
}

func TestDetailUpdateDelete(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/api/v1/products/9", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/api/v1/products/9", `{"stock":25}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body itemEnvelope
	decode(t, w, &body)
	assert.Equal(t, 25, body.Item.Stock)
	assert.Equal(t, "In Stock", string(body.Item.Status))

	w = do(r, http.MethodDelete, "/api/v1/products/9", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/products/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPut, "/api/v1/products/9", `{"stock":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdate_PartialLeavesWarehouseUnchecked(t *testing.T) {
	r := newTestRouterWith(knownWarehouses{"WH-NY": true})

	w := do(r, http.MethodPut, "/api/v1/products/9", `{"stock":25}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body itemEnvelope
	decode(t, w, &body)
	assert.Equal(t, 25, body.Item.Stock)

	w = do(r, http.MethodPut, "/api/v1/products/9", `{"warehouseId":"WH-TX"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
