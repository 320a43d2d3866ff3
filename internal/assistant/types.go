package assistant

import (
	"time"

	"nexstock/internal/catalog"
	"nexstock/internal/model"
)

// Resolution is the outcome of one resolver round trip. Degraded is set when
// Answer is a fixed fallback reply rather than model output; Filter is then nil.
type Resolution struct {
	Answer   string
	Filter   *catalog.FilterCriteria
	Degraded bool
}

// Turn is one transcript entry.
type Turn struct {
	Role   string
	Text   string
	Filter *catalog.FilterCriteria
	At     time.Time
}

// --- UseCase Inputs ---

type AskInput struct {
	SessionID string
	Query     string
}

// --- UseCase Outputs ---

// AskOutput reports the reply and the session state after it was applied.
// Stale is set when a newer query on the same session was dispatched while this
// one was in flight; the highlight set and view then reflect the newer query.
type AskOutput struct {
	Answer         string
	Filter         *catalog.FilterCriteria
	HighlightedIDs []string
	ActiveView     model.ViewState
	Stale          bool
	Degraded       bool
}

type TranscriptOutput struct {
	SessionID      string
	Turns          []Turn
	HighlightedIDs []string
	ActiveView     model.ViewState
}

// Forecast is a narrative demand forecast for one product.
type Forecast struct {
	ProductID   string
	ProductName string
	Text        string
	Degraded    bool
	GeneratedAt time.Time
}

// ForecastOutput wraps a Forecast. Stale is set when a newer forecast for the
// same product was requested before this one finished.
type ForecastOutput struct {
	Forecast Forecast
	Stale    bool
}
