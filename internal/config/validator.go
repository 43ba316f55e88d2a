package config

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "api.page_size")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// regionCodeRegex validates ISO 3166-1 alpha-2 country codes
var regionCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateFeed()...)
	errors = append(errors, c.validateTicker()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateAPI validates the APIConfig
func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "api.base_url",
				Value:   c.API.BaseURL,
				Message: "must be an absolute URL",
			})
		}
	}

	if c.API.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: "must be greater than 0",
		})
	}

	if c.API.PageSize <= 0 || c.API.PageSize > 1000 {
		errors = append(errors, ValidationError{
			Field:   "api.page_size",
			Value:   c.API.PageSize,
			Message: "must be between 1 and 1000",
		})
	}

	if c.API.MaxPages <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.max_pages",
			Value:   c.API.MaxPages,
			Message: "must be greater than 0",
		})
	}

	return errors
}

// validateFeed validates the FeedConfig
func (c *Config) validateFeed() []ValidationError {
	var errors []ValidationError

	if !regionCodeRegex.MatchString(c.Feed.RegionCode) {
		errors = append(errors, ValidationError{
			Field:   "feed.region_code",
			Value:   c.Feed.RegionCode,
			Message: "must be a two-letter uppercase country code",
		})
	}

	if c.Feed.LookbackDays <= 0 || c.Feed.LookbackDays > 90 {
		errors = append(errors, ValidationError{
			Field:   "feed.lookback_days",
			Value:   c.Feed.LookbackDays,
			Message: "must be between 1 and 90",
		})
	}

	return errors
}

// validateTicker validates the TickerConfig
func (c *Config) validateTicker() []ValidationError {
	var errors []ValidationError

	if c.Ticker.Speed <= 0 {
		errors = append(errors, ValidationError{
			Field:   "ticker.speed",
			Value:   c.Ticker.Speed,
			Message: "must be greater than 0",
		})
	}

	if c.Ticker.FrameIntervalMs < 16 || c.Ticker.FrameIntervalMs > 1000 {
		errors = append(errors, ValidationError{
			Field:   "ticker.frame_interval_ms",
			Value:   c.Ticker.FrameIntervalMs,
			Message: "must be between 16 and 1000",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must not be negative",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must not be negative",
		})
	}

	return errors
}
