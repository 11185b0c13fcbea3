package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}

	// Re-initialization must be safe.
	if err := Init(); err != nil {
		t.Fatalf("failed to re-initialize logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after re-initialization")
	}
}

func TestLoggerBasic(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	logger := Get()
	logger.Info(ctx, "test message", String("k", "v"))
	logger.Debug(ctx, "debug message", Int("n", 1))
	logger.Warn(ctx, "warn message", Any("v", []string{"a"}))
	logger.Error(ctx, "error message", Error(context.Canceled))
}

func TestNamedLogger(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	named := Named("component")
	if named == nil {
		t.Fatal("named logger is nil")
	}
	named.Info(context.Background(), "named message")
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for input, want := range cases {
		if err := SetLevelString(input); err != nil {
			t.Fatalf("SetLevelString(%q) failed: %v", input, err)
		}
		if got := levelVar.Level(); got != want {
			t.Errorf("SetLevelString(%q) set level %v, want %v", input, got, want)
		}
	}

	if err := SetLevelString("loud"); err == nil {
		t.Error("expected error for unknown level name")
	}
}

func TestFieldConstructors(t *testing.T) {
	if f := String("k", "v"); f.Key != "k" || f.Value != "v" {
		t.Errorf("String constructor mismatch: %+v", f)
	}
	if f := Int("n", 7); f.Key != "n" || f.Value != 7 {
		t.Errorf("Int constructor mismatch: %+v", f)
	}
	if f := Error(context.Canceled); f.Key != "error" {
		t.Errorf("Error constructor mismatch: %+v", f)
	}
}
