package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexstock/internal/assistant"
	"nexstock/internal/catalog"
	catalogmem "nexstock/internal/catalog/repository/memory"
	catalogUC "nexstock/internal/catalog/usecase"
	"nexstock/internal/model"
	"nexstock/pkg/llmprovider"
	"nexstock/pkg/log"
)

type fakeGenerator struct {
	mu        sync.Mutex
	available bool
	calls     int
	requests  []*llmprovider.Request
	generate  func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

func (f *fakeGenerator) Available() bool { return f.available }

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.mu.Lock()
	f.calls++
	f.requests = append(f.requests, req)
	gen := f.generate
	f.mu.Unlock()
	return gen(ctx, req)
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.Message{Role: "model", Parts: []llmprovider.Part{{Text: text}}}}
}

func replyWith(text string) *fakeGenerator {
	return &fakeGenerator{
		available: true,
		generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return textResponse(text), nil
		},
	}
}

func newTestUseCase(gen assistant.Generator, cfg Config) *implUseCase {
	l := log.NewNop()
	items := catalogUC.New(catalogmem.New(l, true), nil, l)
	return New(gen, items, l, cfg).(*implUseCase)
}

func twoItems() []catalog.Item {
	return []catalog.Item{
		{ID: "1", Name: "Wireless Headphones", Category: "Electronics", Price: 129.99, Stock: 45, MinStock: 20},
		{ID: "2", Name: "Ergonomic Chair", Category: "Furniture", Price: 249.50, Stock: 12, MinStock: 15},
	}
}

func TestResolve_Degrades(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"call error", &fakeGenerator{available: true, generate: func(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
			return nil, errors.New("connection reset")
		}}},
		{"malformed json", replyWith(`{"answer": "half`)},
		{"wrong answer type", replyWith(`{"answer": 42}`)},
		{"not json", replyWith("Electronics are in aisle 3")},
		{"null reply", replyWith("null")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.gen, Config{})
			res := uc.Resolve(context.Background(), "find electronics", twoItems())
			assert.Equal(t, assistant.AnswerUnavailable, res.Answer)
			assert.Nil(t, res.Filter)
			assert.True(t, res.Degraded)
		})
	}
}

func TestResolve_NoCredentialsSkipsCall(t *testing.T) {
	gen := replyWith(`{"answer":"ok"}`)
	gen.available = false
	uc := newTestUseCase(gen, Config{})

	res := uc.Resolve(context.Background(), "find electronics", twoItems())
	assert.Equal(t, assistant.AnswerUnavailable, res.Answer)
	assert.Nil(t, res.Filter)
	assert.Zero(t, gen.callCount())

	failing := newTestUseCase(&fakeGenerator{available: true, generate: func(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
		return nil, errors.New("boom")
	}}, Config{})
	assert.Equal(t, failing.Resolve(context.Background(), "q", nil), res)
}

func TestResolve_ParsesReply(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantAnswer string
		wantFilter *catalog.FilterCriteria
	}{
		{
			name:       "filter",
			reply:      `{"answer":"Here are the electronics.","filterCriteria":{"category":"Electronics"}}`,
			wantAnswer: "Here are the electronics.",
			wantFilter: &catalog.FilterCriteria{Category: ptr("Electronics")},
		},
		{
			name:       "null filter",
			reply:      `{"answer":"You have 10 products.","filterCriteria":null}`,
			wantAnswer: "You have 10 products.",
		},
		{
			name:       "empty filter object",
			reply:      `{"answer":"Sure.","filterCriteria":{}}`,
			wantAnswer: "Sure.",
		},
		{
			name:       "blank answer",
			reply:      `{"answer":"  "}`,
			wantAnswer: assistant.AnswerEmpty,
		},
		{
			name:       "empty text",
			reply:      "",
			wantAnswer: assistant.AnswerEmpty,
		},
		{
			name:       "fenced",
			reply:      "```json\n{\"answer\":\"Low items.\",\"filterCriteria\":{\"stockStatus\":\"low\"}}\n```",
			wantAnswer: "Low items.",
			wantFilter: &catalog.FilterCriteria{StockStatus: ptr("low")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(replyWith(tt.reply), Config{})
			res := uc.Resolve(context.Background(), "q", twoItems())
			assert.Equal(t, tt.wantAnswer, res.Answer)
			assert.Equal(t, tt.wantFilter, res.Filter)
			assert.False(t, res.Degraded)
		})
	}
}

func TestResolve_Request(t *testing.T) {
	gen := replyWith(`{"answer":"ok"}`)
	uc := newTestUseCase(gen, Config{})

	uc.Resolve(context.Background(), "what is low?", twoItems())

	require.Len(t, gen.requests, 1)
	req := gen.requests[0]
	assert.Equal(t, "application/json", req.ResponseMIMEType)
	require.NotNil(t, req.ResponseSchema)
	assert.Equal(t, []string{"answer"}, req.ResponseSchema.Required)
	assert.True(t, req.ResponseSchema.Properties["filterCriteria"].Nullable)
	assert.Contains(t, req.ResponseSchema.Properties["filterCriteria"].Properties, "stockStatus")
	require.NotNil(t, req.SystemInstruction)
	assert.Contains(t, req.SystemInstruction.Parts[0].Text, "NexStock")

	prompt := req.Messages[0].Parts[0].Text
	assert.Contains(t, prompt, `"name":"Ergonomic Chair"`)
	assert.Contains(t, prompt, `"status":"Low Stock"`)
	assert.Contains(t, prompt, `"status":"In Stock"`)
	assert.Contains(t, prompt, `User Query: "what is low?"`)
}

func TestAsk_AppliesFilter(t *testing.T) {
	ctx := context.Background()
	gen := replyWith(`{"answer":"Found them.","filterCriteria":{"category":"furniture"}}`)
	uc := newTestUseCase(gen, Config{})

	out, err := uc.Ask(ctx, assistant.AskInput{SessionID: "s1", Query: "show furniture"})
	require.NoError(t, err)
	assert.Equal(t, "Found them.", out.Answer)
	assert.Equal(t, []string{"2", "5"}, out.HighlightedIDs)
	assert.Equal(t, model.ViewInventory, out.ActiveView)
	assert.False(t, out.Stale)

	tr, err := uc.Transcript(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, tr.Turns, 3)
	assert.Equal(t, assistant.Greeting, tr.Turns[0].Text)
	assert.Equal(t, "show furniture", tr.Turns[1].Text)
	assert.Equal(t, assistant.RoleUser, tr.Turns[1].Role)
	assert.Equal(t, "Found them.", tr.Turns[2].Text)

	// A reply with no filter clears the highlight and leaves the view alone.
	gen.generate = func(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
		return textResponse(`{"answer":"You have 10 products."}`), nil
	}
	out, err = uc.Ask(ctx, assistant.AskInput{SessionID: "s1", Query: "how many?"})
	require.NoError(t, err)
	assert.Empty(t, out.HighlightedIDs)
	assert.Equal(t, model.ViewInventory, out.ActiveView)
}

func TestAsk_NoMatchClearsSilently(t *testing.T) {
	uc := newTestUseCase(replyWith(`{"answer":"None.","filterCriteria":{"name":"spaceship"}}`), Config{})

	out, err := uc.Ask(context.Background(), assistant.AskInput{SessionID: "s", Query: "spaceships"})
	require.NoError(t, err)
	assert.Empty(t, out.HighlightedIDs)
	assert.Equal(t, model.ViewDashboard, out.ActiveView)
}

func TestAsk_Validation(t *testing.T) {
	uc := newTestUseCase(replyWith(`{}`), Config{})

	_, err := uc.Ask(context.Background(), assistant.AskInput{SessionID: "s", Query: "  "})
	assert.ErrorIs(t, err, assistant.ErrEmptyQuery)

	_, err = uc.Ask(context.Background(), assistant.AskInput{Query: "hi"})
	assert.ErrorIs(t, err, assistant.ErrSessionIDRequired)
}

func TestAsk_StaleReplyIsNotApplied(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})

	gen := &fakeGenerator{available: true}
	gen.generate = func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		if strings.Contains(req.Messages[0].Parts[0].Text, "slow") {
			close(started)
			<-release
			return textResponse(`{"answer":"Chairs.","filterCriteria":{"name":"chair"}}`), nil
		}
		return textResponse(`{"answer":"Desks.","filterCriteria":{"name":"desk"}}`), nil
	}
	uc := newTestUseCase(gen, Config{})

	var (
		wg   sync.WaitGroup
		slow assistant.AskOutput
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		slow, _ = uc.Ask(ctx, assistant.AskInput{SessionID: "s", Query: "slow chair query"})
	}()

	<-started
	fast, err := uc.Ask(ctx, assistant.AskInput{SessionID: "s", Query: "desks please"})
	require.NoError(t, err)
	assert.False(t, fast.Stale)
	assert.Equal(t, []string{"5"}, fast.HighlightedIDs)

	close(release)
	wg.Wait()

	assert.True(t, slow.Stale)
	assert.Equal(t, "Chairs.", slow.Answer)
	assert.Equal(t, []string{"5"}, slow.HighlightedIDs)

	tr, err := uc.Transcript(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, tr.HighlightedIDs)
	assert.Len(t, tr.Turns, 5)
}

func TestTranscript_Capped(t *testing.T) {
	uc := newTestUseCase(replyWith(`{"answer":"ok"}`), Config{MaxTranscript: 4})

	for i := 0; i < 3; i++ {
		_, err := uc.Ask(context.Background(), assistant.AskInput{SessionID: "s", Query: "q"})
		require.NoError(t, err)
	}

	tr, err := uc.Transcript(context.Background(), "s")
	require.NoError(t, err)
	assert.Len(t, tr.Turns, 4)
	assert.NotEqual(t, assistant.Greeting, tr.Turns[0].Text)
}

func TestClearHighlight(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(replyWith(`{"answer":"ok","filterCriteria":{"category":"Home"}}`), Config{})

	assert.ErrorIs(t, uc.ClearHighlight(ctx, "unknown"), assistant.ErrSessionNotFound)

	out, err := uc.Ask(ctx, assistant.AskInput{SessionID: "s", Query: "home stuff"})
	require.NoError(t, err)
	require.Equal(t, []string{"10"}, out.HighlightedIDs)

	require.NoError(t, uc.ClearHighlight(ctx, "s"))
	tr, err := uc.Transcript(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, tr.HighlightedIDs)
}

func TestSessions_TTLIsIdleTimeout(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(replyWith(`{"answer":"ok"}`), Config{SessionTTL: 150 * time.Millisecond})

	_, err := uc.Ask(ctx, assistant.AskInput{SessionID: "s", Query: "hello"})
	require.NoError(t, err)

	// Keep touching the session well past one TTL.
	deadline := time.Now().Add(450 * time.Millisecond)
	for time.Now().Before(deadline) {
		require.NoError(t, uc.ClearHighlight(ctx, "s"))
		time.Sleep(30 * time.Millisecond)
	}

	tr, err := uc.Transcript(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, tr.Turns, 3)
}

func TestSessions_Expire(t *testing.T) {
	uc := newTestUseCase(replyWith(`{"answer":"ok","filterCriteria":{"category":"Home"}}`), Config{SessionTTL: 20 * time.Millisecond})

	_, err := uc.Ask(context.Background(), assistant.AskInput{SessionID: "s", Query: "home"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return errors.Is(uc.ClearHighlight(context.Background(), "s"), assistant.ErrSessionNotFound)
	}, time.Second, 10*time.Millisecond)
}

func TestForecast(t *testing.T) {
	ctx := context.Background()
	gen := replyWith("Expect roughly 47 units next month.")
	uc := newTestUseCase(gen, Config{})

	out, err := uc.Forecast(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Expect roughly 47 units next month.", out.Forecast.Text)
	assert.Equal(t, "Wireless Headphones", out.Forecast.ProductName)
	assert.False(t, out.Stale)
	assert.Contains(t, gen.requests[0].Messages[0].Parts[0].Text, "Product: Wireless Headphones")
	assert.Nil(t, gen.requests[0].ResponseSchema)

	latest, err := uc.LatestForecast(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, out.Forecast, latest)

	_, err = uc.LatestForecast(ctx, "2")
	assert.ErrorIs(t, err, assistant.ErrForecastNotFound)

	_, err = uc.Forecast(ctx, "missing")
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
}

func TestForecast_Degrades(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		want string
	}{
		{"no credentials", &fakeGenerator{available: false}, assistant.ForecastMissingKey},
		{"empty reply", replyWith("   "), assistant.ForecastEmpty},
		{"call error", &fakeGenerator{available: true, generate: func(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
			return nil, errors.New("timeout")
		}}, assistant.ForecastUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestUseCase(tt.gen, Config{}).Forecast(context.Background(), "3")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Forecast.Text)
			assert.True(t, out.Forecast.Degraded)
		})
	}
}

func TestForecast_InFlightAndStale(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})

	var first sync.Once
	gen := &fakeGenerator{available: true}
	gen.generate = func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		blocking := false
		first.Do(func() { blocking = true })
		if blocking {
			close(started)
			<-release
			return textResponse("old forecast"), nil
		}
		return textResponse("new forecast"), nil
	}
	uc := newTestUseCase(gen, Config{})

	var (
		wg  sync.WaitGroup
		old assistant.ForecastOutput
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		old, _ = uc.Forecast(ctx, "4")
	}()

	<-started
	assert.Equal(t, []string{"4"}, uc.InFlightForecasts(ctx))

	fresh, err := uc.Forecast(ctx, "4")
	require.NoError(t, err)
	assert.False(t, fresh.Stale)
	assert.Equal(t, []string{"4"}, uc.InFlightForecasts(ctx))

	close(release)
	wg.Wait()

	assert.True(t, old.Stale)
	assert.Empty(t, uc.InFlightForecasts(ctx))

	latest, err := uc.LatestForecast(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "new forecast", latest.Text)
}

func ptr(s string) *string { return &s }
