package usecase

import (
	"context"
	"slices"
	"strings"
	"sync"

	"nexstock/internal/assistant"
)

// forecastTracker serializes forecast results per product. Each request takes
// a token; only the holder of the latest token may publish its result.
type forecastTracker struct {
	mu       sync.Mutex
	tokens   map[string]uint64
	inFlight map[string]int
	latest   map[string]assistant.Forecast
}

func newForecastTracker() *forecastTracker {
	return &forecastTracker{
		tokens:   make(map[string]uint64),
		inFlight: make(map[string]int),
		latest:   make(map[string]assistant.Forecast),
	}
}

func (t *forecastTracker) begin(productID string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tokens[productID]++
	t.inFlight[productID]++
	return t.tokens[productID]
}

// finish clears the in-flight mark and stores f if token is current.
func (t *forecastTracker) finish(productID string, token uint64, f assistant.Forecast) (stale bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight[productID]--; t.inFlight[productID] <= 0 {
		delete(t.inFlight, productID)
	}
	if token != t.tokens[productID] {
		return true
	}
	t.latest[productID] = f
	return false
}

func (t *forecastTracker) get(productID string) (assistant.Forecast, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f, ok := t.latest[productID]
	return f, ok
}

func (t *forecastTracker) pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, 0, len(t.inFlight))
	for id := range t.inFlight {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Forecast asks the model for a short demand narrative for one product.
// Model failures degrade to a fixed message; only an unknown product is an error.
func (uc *implUseCase) Forecast(ctx context.Context, productID string) (assistant.ForecastOutput, error) {
	detail, err := uc.catalog.Detail(ctx, productID)
	if err != nil {
		return assistant.ForecastOutput{}, err
	}
	product := detail.Item

	token := uc.forecasts.begin(product.ID)
	text, degraded := uc.generateForecast(ctx, product.Name)

	f := assistant.Forecast{
		ProductID:   product.ID,
		ProductName: product.Name,
		Text:        text,
		Degraded:    degraded,
		GeneratedAt: uc.now(),
	}
	stale := uc.forecasts.finish(product.ID, token, f)
	if stale {
		uc.l.Infof(ctx, "assistant.Forecast: newer forecast pending for product=%s, result not stored", product.ID)
	}
	return assistant.ForecastOutput{Forecast: f, Stale: stale}, nil
}

func (uc *implUseCase) generateForecast(ctx context.Context, productName string) (string, bool) {
	if !uc.llm.Available() {
		uc.l.Warnf(ctx, "assistant.Forecast: no language model configured")
		return assistant.ForecastMissingKey, true
	}

	resp, err := uc.llm.GenerateContent(ctx, buildForecastRequest(productName))
	if err != nil {
		uc.l.Errorf(ctx, "assistant.Forecast GenerateContent: %v", err)
		return assistant.ForecastUnavailable, true
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return assistant.ForecastEmpty, true
	}
	return text, false
}

// LatestForecast returns the most recent stored forecast for a product.
func (uc *implUseCase) LatestForecast(ctx context.Context, productID string) (assistant.Forecast, error) {
	f, ok := uc.forecasts.get(productID)
	if !ok {
		return assistant.Forecast{}, assistant.ErrForecastNotFound
	}
	return f, nil
}

// InFlightForecasts lists the product IDs with a forecast request outstanding.
func (uc *implUseCase) InFlightForecasts(ctx context.Context) []string {
	return uc.forecasts.pending()
}
