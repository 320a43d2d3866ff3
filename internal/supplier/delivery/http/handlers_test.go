package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexstock/internal/supplier/repository/memory"
	"nexstock/internal/supplier/usecase"
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

func TestList_AllMeansAny(t *testing.T) {
	w := do(newTestRouter(), http.MethodGet, "/api/v1/suppliers?status=All&category=Home", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Lumina"`)
	assert.NotContains(t, w.Body.String(), `"name":"TechSply"`)
}

func TestCreate(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/api/v1/suppliers",
		`{"name":"Acme","email":"ops@acme.test","category":"Home","joinDate":"2024-10-01","status":"Pending"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"joinDate":"2024-10-01"`)
	assert.Contains(t, w.Body.String(), `"rating":5`)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.c"}`},
		{"bad email", `{"name":"x","email":"nope"}`},
		{"bad date", `{"name":"x","joinDate":"10/01/2024"}`},
		{"bad status", `{"name":"x","status":"Gone"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/v1/suppliers", tt.body).Code)
		})
	}
}

func TestUpdateDelete(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPut, "/api/v1/suppliers/SUP-006", `{"status":"Active"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Active"`)

	w = do(r, http.MethodGet, "/api/v1/suppliers/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":7`)

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/v1/suppliers/SUP-006", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/suppliers/SUP-006", "").Code)
}
