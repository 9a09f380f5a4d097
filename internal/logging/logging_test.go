package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestWithContextAndFromContextRoundTrip(t *testing.T) {
	logger := New(slog.LevelDebug)
	ctx := WithContext(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatal("FromContext should return the logger attached by WithContext")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	got := FromContext(context.Background())
	if got != slog.Default() {
		t.Fatal("FromContext should fall back to slog.Default() when nothing was attached")
	}
}

func TestTabFieldsShape(t *testing.T) {
	fields := TabFields("/lib/foo.lppkg", "1.0mm pitch")
	if len(fields) != 2 {
		t.Fatalf("len(fields) = %d, want 2", len(fields))
	}
	rec := slog.Group("x", fields...)
	if rec.Key != "x" {
		t.Fatalf("unexpected attr built from TabFields: %+v", rec)
	}
}

func TestNewReturnsUsableLogger(t *testing.T) {
	logger := New(slog.LevelInfo)
	if logger == nil {
		t.Fatal("New should never return nil")
	}
	logger.Info("smoke test", "k", "v")
}
