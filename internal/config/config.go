package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete kudoticker configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Feed    FeedConfig    `mapstructure:"feed"`
	Ticker  TickerConfig  `mapstructure:"ticker"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls access to the rewards API
type APIConfig struct {
	// BaseURL is the rewards API base URL (e.g., "https://api.rewards.example.com")
	BaseURL string `mapstructure:"base_url"`
	// AccessToken is the API credential. Usually provided via
	// KUDOTICKER_API_ACCESS_TOKEN rather than the config file.
	AccessToken string `mapstructure:"access_token"`
	// TimeoutSeconds is the per-request HTTP timeout (default: 15)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// PageSize is the number of records requested per page (default: 100)
	PageSize int `mapstructure:"page_size"`
	// MaxPages caps the pagination loop so a misbehaving API cannot spin
	// the loader forever (default: 50, 0 is invalid)
	MaxPages int `mapstructure:"max_pages"`
}

// FeedConfig controls which recognitions are displayed
type FeedConfig struct {
	// RegionCode restricts the feed to receivers in this country code (default: "BD")
	RegionCode string `mapstructure:"region_code"`
	// LookbackDays sets the start_time filter to now minus this many days (default: 3)
	LookbackDays int `mapstructure:"lookback_days"`
}

// TickerConfig controls the scrolling animation
type TickerConfig struct {
	// Speed is the scroll speed in rows per second (default: 2.0)
	Speed float64 `mapstructure:"speed"`
	// FrameIntervalMs is the animation frame interval in milliseconds (default: 100)
	FrameIntervalMs int `mapstructure:"frame_interval_ms"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether file logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "",
			AccessToken:    "",
			TimeoutSeconds: 15,
			PageSize:       100,
			MaxPages:       50,
		},
		Feed: FeedConfig{
			RegionCode:   "BD",
			LookbackDays: 3,
		},
		Ticker: TickerConfig{
			Speed:           2.0,
			FrameIntervalMs: 100,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Timeout returns the API request timeout as a time.Duration
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Lookback returns the feed lookback window as a time.Duration
func (c *FeedConfig) Lookback() time.Duration {
	return time.Duration(c.LookbackDays) * 24 * time.Hour
}

// FrameInterval returns the animation frame interval as a time.Duration
func (c *TickerConfig) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.access_token", defaults.API.AccessToken)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)
	viper.SetDefault("api.page_size", defaults.API.PageSize)
	viper.SetDefault("api.max_pages", defaults.API.MaxPages)

	// Feed defaults
	viper.SetDefault("feed.region_code", defaults.Feed.RegionCode)
	viper.SetDefault("feed.lookback_days", defaults.Feed.LookbackDays)

	// Ticker defaults
	viper.SetDefault("ticker.speed", defaults.Ticker.Speed)
	viper.SetDefault("ticker.frame_interval_ms", defaults.Ticker.FrameIntervalMs)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kudoticker")
	}
	// Fall back to ~/.config/kudoticker
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kudoticker"
	}
	return filepath.Join(home, ".config", "kudoticker")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the directory log files are written to
func LogDir() string {
	return filepath.Join(ConfigDir(), "logs")
}
