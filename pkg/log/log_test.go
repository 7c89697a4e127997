// pkg/log/log_test.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		name  string
		level slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	} {
		if l := ParseLevel(tc.name); l != tc.level {
			t.Errorf("%q: got level %v, expected %v", tc.name, l, tc.level)
		}
	}
}

func TestNilLogger(t *testing.T) {
	var lg *Logger
	// None of these should panic.
	lg.Debug("debug")
	lg.Debugf("debug %d", 1)
	lg.Info("info")
	lg.Infof("info %d", 1)
	if lg.With("key", "value") != nil {
		t.Errorf("With on a nil logger returned non-nil")
	}
}

func TestNewWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	lg := New("debug", dir)
	lg.Info("test message", slog.Int("answer", 42))

	if lg.LogFile != filepath.Join(dir, "systext.slog") {
		t.Errorf("unexpected log file %q", lg.LogFile)
	}
	b, err := os.ReadFile(lg.LogFile)
	if err != nil {
		t.Fatalf("%s: %v", lg.LogFile, err)
	}
	if !strings.Contains(string(b), "test message") {
		t.Errorf("log file doesn't contain the logged message")
	}
	if !strings.Contains(string(b), "callstack") {
		t.Errorf("log file records don't include the call stack")
	}
}

func TestCallstack(t *testing.T) {
	fr := func() []StackFrame { return Callstack(nil) }()
	if len(fr) == 0 {
		t.Fatalf("empty call stack")
	}
	if fr[0].File != "log_test.go" {
		t.Errorf("expected first frame in log_test.go, got %s", fr[0])
	}
}
