package log_test

import (
	"context"
	"testing"

	"nexstock/pkg/log"
)

func TestInit(t *testing.T) {
	ctx := context.Background()

	cases := []log.ZapConfig{
		{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level", Mode: "", Encoding: ""},
	}

	for _, cfg := range cases {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("expected logger for config %+v", cfg)
		}
		l.Debugf(ctx, "debug %s", "message")
		l.Info(ctx, "info message")
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Error(context.Background(), "discarded")
}
