package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRun_Help(t *testing.T) {
	if code := run([]string{"--help"}); code != 0 {
		t.Errorf("run(--help) = %d, want 0", code)
	}
}

func TestRun_MissingFile(t *testing.T) {
	t.Setenv("WAVSNIP_LOG_LEVEL", "")
	t.Setenv("WAVSNIP_LOG_FILE", "")

	if code := run([]string{filepath.Join(t.TempDir(), "missing.wav")}); code != 1 {
		t.Errorf("run(missing) = %d, want 1", code)
	}
}

func TestRun_BadConfig(t *testing.T) {
	t.Setenv("WAVSNIP_LOG_FORMAT", "xml")

	if code := run(nil); code != 1 {
		t.Errorf("run() with bad log format = %d, want 1", code)
	}
}

func TestRun_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "wavsnip.log")
	t.Setenv("WAVSNIP_LOG_FILE", logPath)
	t.Setenv("WAVSNIP_LOG_FORMAT", "")

	run([]string{filepath.Join(t.TempDir(), "missing.wav")})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}

	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
