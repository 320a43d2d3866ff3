package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nexstock/config"
	assistantUC "nexstock/internal/assistant/usecase"
	"nexstock/internal/httpserver"
	"nexstock/internal/middleware"
	"nexstock/pkg/gsheets"
	"nexstock/pkg/llmprovider"
	"nexstock/pkg/log"
	"nexstock/pkg/postgres"
)

func loadConfig() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return cfg, logger, nil
}

func serve(parent context.Context) error {
	// 1. Configuration + logger
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting NexStock...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 2. Database (optional)
	var srvCfg httpserver.Config
	if cfg.Database.Driver == config.DriverPostgres {
		db, err := postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		srvCfg.DB = db
		logger.Info(ctx, "✅ PostgreSQL connected")
	}

	// 3. Language model
	srvCfg.LLM = newLLMManager(ctx, cfg, logger)

	// 4. Google Sheets (optional)
	if cfg.GoogleSheets.SpreadsheetID != "" {
		client, err := gsheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath, cfg.GoogleSheets.SpreadsheetID)
		if err != nil {
			logger.Warnf(ctx, "Google Sheets not available (optional): %v", err)
		} else {
			srvCfg.Sheets = client
			logger.Info(ctx, "✅ Google Sheets initialized")
		}
	}

	// 5. HTTP Server
	srvCfg.Logger = logger
	srvCfg.Port = cfg.HTTPServer.Port
	srvCfg.Mode = cfg.HTTPServer.Mode
	srvCfg.Environment = cfg.Environment.Name
	srvCfg.SheetName = cfg.GoogleSheets.SheetName
	srvCfg.Assistant = assistantUC.Config{
		SessionTTL:    cfg.Assistant.SessionTTL,
		MaxSessions:   cfg.Assistant.MaxSessions,
		MaxTranscript: cfg.Assistant.MaxTranscript,
	}
	srvCfg.RateLimit = middleware.RateLimitConfig{
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		MaxClients:     cfg.RateLimit.MaxClients,
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		return fmt.Errorf("run server: %w", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

// newLLMManager builds the provider manager. A missing key or a provider
// that fails to initialize yields a manager with no providers, which keeps
// the assistant in degraded mode instead of failing startup.
func newLLMManager(ctx context.Context, cfg *config.Config, logger log.Logger) *llmprovider.Manager {
	managerCfg := &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}

	providers, warnings, err := llmprovider.InitializeProviders([]llmprovider.ProviderConfig{{
		Name:     "gemini",
		Enabled:  cfg.Gemini.APIKey != "",
		Priority: 1,
		APIKey:   cfg.Gemini.APIKey,
		BaseURL:  cfg.Gemini.APIURL,
		Model:    cfg.Gemini.Model,
		Timeout:  cfg.Gemini.Timeout,
	}})
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	if err != nil {
		logger.Warnf(ctx, "Assistant running without a language model: %v", err)
		return llmprovider.NewManager(nil, managerCfg, logger)
	}

	logger.Infof(ctx, "✅ %d LLM provider(s) initialized", len(providers))
	return llmprovider.NewManager(providers, managerCfg, logger)
}
