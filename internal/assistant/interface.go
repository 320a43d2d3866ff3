package assistant

import (
	"context"

	"nexstock/internal/catalog"
	"nexstock/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve turns a free-text query into an answer and an optional filter.
	// It never fails: any problem degrades to a fixed answer with no filter.
	Resolve(ctx context.Context, query string, items []catalog.Item) Resolution

	Ask(ctx context.Context, input AskInput) (AskOutput, error)
	Transcript(ctx context.Context, sessionID string) (TranscriptOutput, error)
	ClearHighlight(ctx context.Context, sessionID string) error

	Forecast(ctx context.Context, productID string) (ForecastOutput, error)
	LatestForecast(ctx context.Context, productID string) (Forecast, error)
	InFlightForecasts(ctx context.Context) []string
}

// Generator is the language model boundary. *llmprovider.Manager satisfies it.
type Generator interface {
	Available() bool
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Catalog is the product source the assistant reads from.
type Catalog interface {
	Snapshot(ctx context.Context) ([]catalog.Item, error)
	Detail(ctx context.Context, id string) (catalog.DetailItemOutput, error)
}
