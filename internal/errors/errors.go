// Package errors provides centralized error definitions and error handling
// utilities for kudoticker. It defines the feed-loading error surface,
// semantic error types, constructors with context wrapping, and
// classification helpers that drive the TUI's error panel.
//
// # Error Types
//
// FeedError represents a failure while loading the recognition feed from the
// rewards API. Semantic errors represent common conditions:
//   - ValidationError: invalid input or configuration
//   - TimeoutError: operation timed out
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewFeedError("page request rejected", errors.ErrAPIFailure).
//		WithEndpoint("/v1/recognitions").WithSkip(200)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrAPIFailure) { ... }
//
//	var feedErr *errors.FeedError
//	if errors.As(err, &feedErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Feed-related sentinel errors
var (
	// ErrAPIFailure indicates the rewards API reported success=false.
	ErrAPIFailure = New("rewards API reported failure")
	// ErrPageLimit indicates pagination hit the defensive page cap.
	ErrPageLimit = New("pagination page limit exceeded")
	// ErrMissingToken indicates no API access token is configured.
	ErrMissingToken = New("API access token not configured")
)

// General sentinel errors
var (
	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = New("operation timed out")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// TickerError is the base interface for kudoticker errors. It extends the
// standard error interface with classification methods.
type TickerError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// FeedError represents errors raised while loading the recognition feed.
//
// Example:
//
//	err := errors.NewFeedError("page request failed", cause).
//		WithEndpoint("/v1/recognitions").WithSkip(100)
type FeedError struct {
	baseError
	Endpoint string
	Skip     int
}

// NewFeedError creates a new FeedError. Feed failures are retryable by
// default since the retry path is a full user-initiated reload.
func NewFeedError(message string, cause error) *FeedError {
	return &FeedError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			retryable:  true,
			userFacing: true,
		},
		Skip: -1, // -1 indicates not set
	}
}

// WithEndpoint adds the request endpoint to the error context.
func (e *FeedError) WithEndpoint(endpoint string) *FeedError {
	e.Endpoint = endpoint
	return e
}

// WithSkip adds the pagination offset to the error context.
func (e *FeedError) WithSkip(skip int) *FeedError {
	e.Skip = skip
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *FeedError) WithRetryable(r bool) *FeedError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *FeedError) Error() string {
	var parts []string
	if e.Endpoint != "" {
		parts = append(parts, fmt.Sprintf("endpoint=%s", e.Endpoint))
	}
	if e.Skip >= 0 {
		parts = append(parts, fmt.Sprintf("skip=%d", e.Skip))
	}

	prefix := "feed error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("feed error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *FeedError) Is(target error) bool {
	if _, ok := target.(*FeedError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or configuration.
//
// Example:
//
//	err := errors.NewValidationError("region code cannot be empty").
//		WithField("feed.region_code")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// TimeoutError represents an operation that timed out.
//
// Example:
//
//	err := errors.NewTimeoutError("fetching recognition page", 15*time.Second)
type TimeoutError struct {
	baseError
	Operation string
	Duration  time.Duration
}

// NewTimeoutError creates a new TimeoutError.
func NewTimeoutError(operation string, duration time.Duration) *TimeoutError {
	return &TimeoutError{
		baseError: baseError{
			message:    operation,
			retryable:  true, // Timeouts are generally retryable
			userFacing: true,
		},
		Operation: operation,
		Duration:  duration,
	}
}

// WithCause adds a cause to the error.
func (e *TimeoutError) WithCause(cause error) *TimeoutError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *TimeoutError) Error() string {
	base := fmt.Sprintf("timeout error: %s (timeout: %s)", e.Operation, e.Duration)
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", base, e.cause)
	}
	return base
}

// Is checks if this error matches the target.
func (e *TimeoutError) Is(target error) bool {
	if _, ok := target.(*TimeoutError); ok {
		return true
	}
	if errors.Is(target, ErrTimeout) {
		return true
	}
	return e.baseError.Is(target)
}

// IsRetryable returns true if the error represents a transient condition
// that may succeed on a user-initiated reload.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var tickerErr TickerError
	if As(err, &tickerErr) {
		return tickerErr.IsRetryable()
	}

	if Is(err, ErrTimeout) {
		return true
	}

	return false
}

// IsUserFacing returns true if the error message is safe to display to end
// users. Unknown errors are treated as internal.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var tickerErr TickerError
	if As(err, &tickerErr) {
		return tickerErr.IsUserFacing()
	}

	var validation *ValidationError
	var timeout *TimeoutError
	if As(err, &validation) || As(err, &timeout) {
		return true
	}

	return false
}

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to load feed")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
