package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatalf("expected a logger")
	}
	if NewLogger(Config{Level: "debug", Format: "json", Service: "svc", Version: "v1"}) == nil {
		t.Fatalf("expected a logger")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"unknown": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for input, expected := range cases {
		if got := parseLevel(input); got != expected {
			t.Fatalf("parseLevel(%q) = %v, expected %v", input, got, expected)
		}
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
}

func TestContextRoundTrip(t *testing.T) {
	base := NewLogger(Config{})
	ctx := WithLogger(context.Background(), base)
	if got := FromContext(ctx, nil); got != base {
		t.Fatalf("expected context logger back")
	}
	if got := FromContext(context.Background(), base); got != base {
		t.Fatalf("expected fallback logger")
	}
}
