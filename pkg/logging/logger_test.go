package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewHonorsLevel(t *testing.T) {
	logger := New("error")
	if logger.Enabled(nil, slog.LevelInfo) {
		t.Error("info should be disabled at error level")
	}
	if !logger.Enabled(nil, slog.LevelError) {
		t.Error("error should be enabled at error level")
	}
}

func TestWithComponent(t *testing.T) {
	logger := Default().WithComponent("calendar")
	if logger == nil || logger.Logger == nil {
		t.Fatal("expected non-nil child logger")
	}
}
