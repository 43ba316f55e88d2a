package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify default API config
	if cfg.API.TimeoutSeconds != 15 {
		t.Errorf("API.TimeoutSeconds = %d, want 15", cfg.API.TimeoutSeconds)
	}
	if cfg.API.PageSize != 100 {
		t.Errorf("API.PageSize = %d, want 100", cfg.API.PageSize)
	}
	if cfg.API.MaxPages != 50 {
		t.Errorf("API.MaxPages = %d, want 50", cfg.API.MaxPages)
	}

	// Verify default feed config
	if cfg.Feed.RegionCode != "BD" {
		t.Errorf("Feed.RegionCode = %q, want %q", cfg.Feed.RegionCode, "BD")
	}
	if cfg.Feed.LookbackDays != 3 {
		t.Errorf("Feed.LookbackDays = %d, want 3", cfg.Feed.LookbackDays)
	}

	// Verify default ticker config
	if cfg.Ticker.Speed != 2.0 {
		t.Errorf("Ticker.Speed = %v, want 2.0", cfg.Ticker.Speed)
	}
	if cfg.Ticker.FrameIntervalMs != 100 {
		t.Errorf("Ticker.FrameIntervalMs = %d, want 100", cfg.Ticker.FrameIntervalMs)
	}

	// Verify default logging config
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if errs := Default().Validate(); len(errs) > 0 {
		t.Errorf("Default() config should validate cleanly, got: %v", ValidationErrors(errs))
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()

	if got := cfg.API.Timeout(); got != 15*time.Second {
		t.Errorf("API.Timeout() = %v, want 15s", got)
	}
	if got := cfg.Feed.Lookback(); got != 72*time.Hour {
		t.Errorf("Feed.Lookback() = %v, want 72h", got)
	}
	if got := cfg.Ticker.FrameInterval(); got != 100*time.Millisecond {
		t.Errorf("Ticker.FrameInterval() = %v, want 100ms", got)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	dir := ConfigDir()
	if dir != "/tmp/xdg-test/kudoticker" {
		t.Errorf("ConfigDir() = %q, want %q", dir, "/tmp/xdg-test/kudoticker")
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	if got := ConfigFile(); got != "/tmp/xdg-test/kudoticker/config.yaml" {
		t.Errorf("ConfigFile() = %q", got)
	}
}

func TestLogDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	if got := LogDir(); !strings.HasSuffix(got, "kudoticker/logs") {
		t.Errorf("LogDir() = %q, want suffix kudoticker/logs", got)
	}
}
