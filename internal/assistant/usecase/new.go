package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"nexstock/internal/assistant"
	"nexstock/pkg/log"
)

const (
	defaultSessionTTL    = 30 * time.Minute
	defaultMaxSessions   = 1000
	defaultMaxTranscript = 100
)

// Config bounds the per-session state kept in memory.
type Config struct {
	SessionTTL    time.Duration
	MaxSessions   int
	MaxTranscript int
}

type implUseCase struct {
	llm     assistant.Generator
	catalog assistant.Catalog
	l       log.Logger
	cfg     Config
	now     func() time.Time

	sessionsMu sync.Mutex
	sessions   *expirable.LRU[string, *session]

	forecasts *forecastTracker
}

// New creates the assistant UseCase. Zero Config fields fall back to defaults.
func New(llm assistant.Generator, catalog assistant.Catalog, l log.Logger, cfg Config) assistant.UseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	if cfg.MaxTranscript <= 0 {
		cfg.MaxTranscript = defaultMaxTranscript
	}

	return &implUseCase{
		llm:       llm,
		catalog:   catalog,
		l:         l,
		cfg:       cfg,
		now:       time.Now,
		sessions:  expirable.NewLRU[string, *session](cfg.MaxSessions, nil, cfg.SessionTTL),
		forecasts: newForecastTracker(),
	}
}
