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

	"nexstock/internal/assistant/usecase"
	catalogmem "nexstock/internal/catalog/repository/memory"
	catalogUC "nexstock/internal/catalog/usecase"
	"nexstock/internal/middleware"
	"nexstock/pkg/llmprovider"
	"nexstock/pkg/log"
)

type staticGenerator struct{ text string }

func (g staticGenerator) Available() bool { return true }

func (g staticGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: g.text}}}}, nil
}

func newTestRouter(reply string, perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	items := catalogUC.New(catalogmem.New(l, true), nil, l)
	uc := usecase.New(staticGenerator{text: reply}, items, l, usecase.Config{})

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.RateLimitConfig{RequestsPerMin: perMin}))
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAsk(t *testing.T) {
	r := newTestRouter(`{"answer":"Two chairs and desks.","filterCriteria":{"category":"Furniture"}}`, 600)

	w := serve(r, http.MethodPost, "/api/v1/assistant/sessions/abc/ask", `{"query":"show furniture"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data askResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Two chairs and desks.", body.Data.Answer)
	assert.Equal(t, []string{"2", "5"}, body.Data.HighlightedIDs)
	assert.Equal(t, "INVENTORY", string(body.Data.ActiveView))
	require.NotNil(t, body.Data.FilterCriteria)
	assert.Equal(t, "Furniture", *body.Data.FilterCriteria.Category)

	w = serve(r, http.MethodGet, "/api/v1/assistant/sessions/abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	var tr struct {
		Data transcriptResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tr))
	assert.Len(t, tr.Data.Turns, 3)

	w = serve(r, http.MethodDelete, "/api/v1/assistant/sessions/abc/highlight", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAsk_MissingQuery(t *testing.T) {
	r := newTestRouter(`{"answer":"ok"}`, 600)

	w := serve(r, http.MethodPost, "/api/v1/assistant/sessions/abc/ask", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearHighlight_UnknownSession(t *testing.T) {
	r := newTestRouter(`{"answer":"ok"}`, 600)

	w := serve(r, http.MethodDelete, "/api/v1/assistant/sessions/nope/highlight", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForecastRoutes(t *testing.T) {
	r := newTestRouter("About 60 units next month.", 600)

	w := serve(r, http.MethodGet, "/api/v1/products/3/forecast", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, http.MethodPost, "/api/v1/products/3/forecast", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data forecastResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Mechanical Keyboard", body.Data.ProductName)
	assert.Equal(t, "About 60 units next month.", body.Data.Forecast)

	w = serve(r, http.MethodGet, "/api/v1/products/3/forecast", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/api/v1/products/404/forecast", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, http.MethodGet, "/api/v1/forecasts/in-flight", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error_code":0,"message":"Success","data":{"productIds":[]}}`, w.Body.String())
}

func TestAsk_RateLimited(t *testing.T) {
	r := newTestRouter(`{"answer":"ok"}`, 10)

	first := serve(r, http.MethodPost, "/api/v1/assistant/sessions/abc/ask", `{"query":"hi"}`)
	require.Equal(t, http.StatusOK, first.Code)

	second := serve(r, http.MethodPost, "/api/v1/assistant/sessions/abc/ask", `{"query":"hi"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
