package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexstock/internal/payroll/repository/memory"
	"nexstock/internal/payroll/usecase"
	staffmem "nexstock/internal/staff/repository/memory"
	staffUC "nexstock/internal/staff/usecase"
	"nexstock/pkg/log"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	uc := usecase.New(memory.New(l), staffUC.New(staffmem.New(l), l), l)

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

func TestList(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/api/v1/payroll?month=October%202024", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"summary":{"totalPayroll":23725.00,"pendingAmount":7700.00,"paidCount":2,"pendingCount":2}`)
	assert.Contains(t, body, `"netPay":4400.00`)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/payroll?month=soon", "").Code)
}

func TestPayAndStatus(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/api/v1/payroll/PR-OCT-004/pay", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Paid"`)
	assert.Contains(t, w.Body.String(), `"paymentDate"`)

	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/api/v1/payroll/PR-OCT-004/pay", "").Code)

	w = do(r, http.MethodPatch, "/api/v1/payroll/PR-OCT-004/status", `{"status":"Pending"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"paymentDate"`)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPatch, "/api/v1/payroll/PR-OCT-004/status", `{"status":"Void"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/v1/payroll/nope/pay", "").Code)
}

func TestCreate(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/api/v1/payroll", `{"staffId":"EMP-004","month":"2024-11","bonus":"75.5"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"month":"November 2024"`)
	assert.Contains(t, w.Body.String(), `"netPay":3575.50`)

	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/api/v1/payroll", `{"staffId":"EMP-004","month":"November 2024"}`).Code)

	w = do(r, http.MethodGet, "/api/v1/payroll/months", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `["November 2024","October 2024","September 2024"]`)
}
