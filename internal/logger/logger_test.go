package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDebugModeWritesToStdout(t *testing.T) {
	l := New("debug", Options{})
	if l == nil {
		t.Fatalf("expected logger instance, got nil")
	}
	l.Sugar().Debugw("debug_probe", "key", "value")
}

func TestNewReleaseModeCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	l := New("release", Options{
		Dir:      dir,
		Filename: "core.log",
	})
	if l == nil {
		t.Fatalf("expected logger instance, got nil")
	}
	l.Sugar().Infow("release_probe", "key", "value")
	_ = l.Sync()

	if _, err := os.Stat(filepath.Join(dir, "core.log")); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestZReturnsFallbackWhenUninitialized(t *testing.T) {
	saved := L
	L = nil
	defer func() { L = saved }()

	if Z() == nil {
		t.Fatalf("expected fallback logger, got nil")
	}
}

func TestNormalizePositiveInt(t *testing.T) {
	if got := normalizePositiveInt(0, 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	if got := normalizePositiveInt(3, 7); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
