package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"nexstock/internal/assistant"
	assistantUC "nexstock/internal/assistant/usecase"
	"nexstock/internal/middleware"
	"nexstock/pkg/gsheets"
	"nexstock/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage: nil db keeps every domain in memory.
	db *sql.DB

	// Assistant
	llm       assistant.Generator
	assistant assistantUC.Config
	rateLimit middleware.RateLimitConfig

	// Reports
	sheets    gsheets.Writer
	sheetName string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// DB backs the catalog and warehouse stores when set.
	DB *sql.DB

	LLM       assistant.Generator
	Assistant assistantUC.Config
	RateLimit middleware.RateLimitConfig

	// Sheets is optional; leave nil to disable inventory export.
	Sheets    gsheets.Writer
	SheetName string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		llm:         cfg.LLM,
		assistant:   cfg.Assistant,
		rateLimit:   cfg.RateLimit,
		sheets:      cfg.Sheets,
		sheetName:   cfg.SheetName,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.llm == nil {
		return errors.New("llm is required")
	}
	return nil
}
