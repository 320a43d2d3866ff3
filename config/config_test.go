package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			HTTPServer: HTTPServerConfig{Port: 8080},
			Database:   DatabaseConfig{Driver: DriverMemory},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "memory defaults", mutate: func(c *Config) {}},
		{name: "postgres with url", mutate: func(c *Config) {
			c.Database.Driver = DriverPostgres
			c.Database.URL = "postgres://localhost/nexstock"
		}},
		{name: "postgres without url", mutate: func(c *Config) { c.Database.Driver = DriverPostgres }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "sqlite" }, wantErr: true},
		{name: "zero port", mutate: func(c *Config) { c.HTTPServer.Port = 0 }, wantErr: true},
		{name: "sheet without credentials", mutate: func(c *Config) { c.GoogleSheets.SpreadsheetID = "abc" }, wantErr: true},
		{name: "missing gemini key is fine", mutate: func(c *Config) { c.Gemini.APIKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
