package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNewFeedError(t *testing.T) {
	cause := ErrAPIFailure
	err := NewFeedError("page request rejected", cause)

	if err.message != "page request rejected" {
		t.Errorf("message = %q, want %q", err.message, "page request rejected")
	}
	if err.cause != cause {
		t.Errorf("cause = %v, want %v", err.cause, cause)
	}
	if !err.IsRetryable() {
		t.Error("IsRetryable() = false, want true")
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
}

func TestFeedError_WithMethods(t *testing.T) {
	err := NewFeedError("test", nil).
		WithEndpoint("/v1/recognitions").
		WithSkip(200).
		WithRetryable(false)

	if err.Endpoint != "/v1/recognitions" {
		t.Errorf("Endpoint = %q, want %q", err.Endpoint, "/v1/recognitions")
	}
	if err.Skip != 200 {
		t.Errorf("Skip = %d, want 200", err.Skip)
	}
	if err.IsRetryable() {
		t.Error("IsRetryable() = true, want false")
	}
}

func TestFeedError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *FeedError
		want string
	}{
		{
			name: "plain",
			err:  NewFeedError("load failed", nil),
			want: "feed error: load failed",
		},
		{
			name: "with endpoint and skip",
			err:  NewFeedError("load failed", nil).WithEndpoint("/v1/recognitions").WithSkip(100),
			want: "feed error [endpoint=/v1/recognitions, skip=100]: load failed",
		},
		{
			name: "with cause",
			err:  NewFeedError("load failed", ErrAPIFailure),
			want: "feed error: load failed: rewards API reported failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFeedError_Is(t *testing.T) {
	err := NewFeedError("page request rejected", ErrAPIFailure)

	if !errors.Is(err, ErrAPIFailure) {
		t.Error("errors.Is(err, ErrAPIFailure) = false, want true")
	}
	if errors.Is(err, ErrPageLimit) {
		t.Error("errors.Is(err, ErrPageLimit) = true, want false")
	}

	var feedErr *FeedError
	if !errors.As(err, &feedErr) {
		t.Error("errors.As(err, *FeedError) = false, want true")
	}
}

func TestFeedError_WrappedThroughFmt(t *testing.T) {
	inner := NewFeedError("page request rejected", ErrAPIFailure)
	outer := fmt.Errorf("loading feed: %w", inner)

	if !errors.Is(outer, ErrAPIFailure) {
		t.Error("wrapped error lost ErrAPIFailure sentinel")
	}

	var feedErr *FeedError
	if !errors.As(outer, &feedErr) {
		t.Fatal("wrapped error lost *FeedError type")
	}
	if feedErr.message != "page request rejected" {
		t.Errorf("message = %q, want %q", feedErr.message, "page request rejected")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("region code cannot be empty").
		WithField("feed.region_code").
		WithValue("")

	if err.Field != "feed.region_code" {
		t.Errorf("Field = %q, want %q", err.Field, "feed.region_code")
	}
	if err.IsRetryable() {
		t.Error("IsRetryable() = true, want false")
	}
	if !strings.Contains(err.Error(), "field=feed.region_code") {
		t.Errorf("Error() = %q, missing field context", err.Error())
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("fetching recognition page", 15*time.Second)

	want := "timeout error: fetching recognition page (timeout: 15s)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !err.IsRetryable() {
		t.Error("IsRetryable() = false, want true")
	}
	if !errors.Is(err, ErrTimeout) {
		t.Error("TimeoutError should match ErrTimeout")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"feed error default", NewFeedError("load failed", nil), true},
		{"feed error not retryable", NewFeedError("bad token", ErrMissingToken).WithRetryable(false), false},
		{"timeout error", NewTimeoutError("fetch", time.Second), true},
		{"wrapped ErrTimeout", fmt.Errorf("fetch: %w", ErrTimeout), true},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"feed error", NewFeedError("load failed", nil), true},
		{"validation error", NewValidationError("bad value"), true},
		{"timeout error", NewTimeoutError("fetch", time.Second), true},
		{"plain error", errors.New("internal"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	err := Wrap(ErrAPIFailure, "loading feed")
	if err.Error() != "loading feed: rewards API reported failure" {
		t.Errorf("Wrap() = %q", err.Error())
	}
	if !errors.Is(err, ErrAPIFailure) {
		t.Error("Wrap() should preserve the sentinel")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "page %d", 3) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrPageLimit, "page %d", 50)
	if err.Error() != "page 50: pagination page limit exceeded" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
}
