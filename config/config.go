package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant
	Gemini    GeminiConfig
	LLM       LLMConfig
	Assistant AssistantConfig
	RateLimit RateLimitConfig

	// Storage
	Database     DatabaseConfig
	GoogleSheets GoogleSheetsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the Gemini provider. An empty APIKey leaves the
// assistant in degraded mode.
type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

// LLMConfig configures the provider manager.
type LLMConfig struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

type AssistantConfig struct {
	SessionTTL    time.Duration
	MaxSessions   int
	MaxTranscript int
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
}

// DatabaseConfig selects the catalog store. Driver is "memory" or "postgres".
type DatabaseConfig struct {
	Driver        string
	URL           string
	MigrationsDir string
}

type GoogleSheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	SheetName       string
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/nexstock/.
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/nexstock/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = viper.GetString("api_key")
	}

	// LLM Provider Manager
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetDuration("llm.max_total_timeout")

	// Assistant
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")
	cfg.Assistant.MaxSessions = viper.GetInt("assistant.max_sessions")
	cfg.Assistant.MaxTranscript = viper.GetInt("assistant.max_transcript")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Storage
	cfg.Database.Driver = strings.ToLower(viper.GetString("database.driver"))
	cfg.Database.URL = viper.GetString("database.url")
	cfg.Database.MigrationsDir = viper.GetString("database.migrations_dir")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.URL = dbURL
	}

	cfg.GoogleSheets.CredentialsPath = viper.GetString("google_sheets.credentials_path")
	cfg.GoogleSheets.SpreadsheetID = viper.GetString("google_sheets.spreadsheet_id")
	cfg.GoogleSheets.SheetName = viper.GetString("google_sheets.sheet_name")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "30s")

	// LLM defaults: a single attempt bounded by the total timeout.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "30s")

	viper.SetDefault("assistant.session_ttl", "30m")
	viper.SetDefault("assistant.max_sessions", 1000)
	viper.SetDefault("assistant.max_transcript", 100)
	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("rate_limit.max_clients", 10000)

	viper.SetDefault("database.driver", DriverMemory)
	viper.SetDefault("database.migrations_dir", "migrations")

	viper.SetDefault("google_sheets.sheet_name", "Inventory")
}

func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case DriverMemory:
	case DriverPostgres:
		if cfg.Database.URL == "" {
			return fmt.Errorf("database.url is required when database.driver is %q", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported database.driver %q", cfg.Database.Driver)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.GoogleSheets.SpreadsheetID != "" && cfg.GoogleSheets.CredentialsPath == "" {
		return fmt.Errorf("google_sheets.credentials_path is required when spreadsheet_id is set")
	}
	return nil
}
