package recognition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kudoshq/kudoticker/internal/errors"
	"github.com/kudoshq/kudoticker/internal/logging"
)

const (
	// listEndpoint is the rewards API recognition list endpoint.
	listEndpoint = "/v1/recognitions"

	// defaultPageSize is the number of records requested per page.
	defaultPageSize = 100

	// defaultMaxPages caps the pagination loop. The API itself has no
	// bound, so a misbehaving server would otherwise spin the loader
	// forever.
	defaultMaxPages = 50

	// defaultRegion restricts the feed to receivers in this country.
	defaultRegion = "BD"

	// defaultLookback is how far back the feed reaches.
	defaultLookback = 3 * 24 * time.Hour

	// defaultTimeout is the per-request HTTP timeout.
	defaultTimeout = 15 * time.Second
)

// Client loads recognition events from the rewards API.
type Client struct {
	baseURL    string
	token      string
	pageSize   int
	maxPages   int
	region     string
	lookback   time.Duration
	httpClient *http.Client
	logger     *logging.Logger
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for page requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithPageSize sets the page size for pagination.
func WithPageSize(size int) Option {
	return func(c *Client) {
		c.pageSize = size
	}
}

// WithMaxPages sets the defensive cap on pagination iterations.
func WithMaxPages(n int) Option {
	return func(c *Client) {
		c.maxPages = n
	}
}

// WithRegion sets the receiver country code the feed is filtered to.
func WithRegion(region string) Option {
	return func(c *Client) {
		c.region = region
	}
}

// WithLookback sets how far back the start_time filter reaches.
func WithLookback(d time.Duration) Option {
	return func(c *Client) {
		c.lookback = d
	}
}

// WithLogger sets the logger used for page-level diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// withNow overrides the clock. Test hook.
func withNow(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a rewards API client. The base URL and access token are
// required; everything else has defaults.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.NewValidationError("base URL is required").WithField("api.base_url")
	}
	if token == "" {
		return nil, errors.ErrMissingToken
	}

	c := &Client{
		baseURL:  baseURL,
		token:    token,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
		region:   defaultRegion,
		lookback: defaultLookback,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logging.Nop(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Load retrieves all recognition events inside the lookback window, across
// all pages, filters them to the configured region, and reshapes them into
// Recognition values. API response order is preserved. On any page failure
// the whole load fails and no records are returned.
func (c *Client) Load(ctx context.Context) ([]Recognition, error) {
	startTime := c.now().Add(-c.lookback).UTC().Format(time.RFC3339)

	var collected []rawRecord
	skip := 0

	for page := 0; ; page++ {
		if page >= c.maxPages {
			return nil, errors.NewFeedError(
				fmt.Sprintf("gave up after %d pages", c.maxPages), errors.ErrPageLimit).
				WithEndpoint(listEndpoint).WithSkip(skip)
		}

		records, err := c.fetchPage(ctx, startTime, skip)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("page fetched", "skip", skip, "records", len(records))

		if len(records) == 0 {
			break
		}

		collected = append(collected, records...)
		skip += c.pageSize
	}

	filtered := filterRegion(collected, c.region)
	c.logger.Info("feed loaded",
		"collected", len(collected),
		"region", c.region,
		"kept", len(filtered))

	return filtered, nil
}

// fetchPage issues one list request at the given skip offset.
func (c *Client) fetchPage(ctx context.Context, startTime string, skip int) ([]rawRecord, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.pageSize))
	q.Set("start_time", startTime)
	q.Set("include_children", "true")
	q.Set("skip", strconv.Itoa(skip))
	q.Set("access_token", c.token)

	reqURL := c.baseURL + listEndpoint + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.NewFeedError("create request", err).
			WithEndpoint(listEndpoint).WithSkip(skip)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewFeedError("page request failed", err).
			WithEndpoint(listEndpoint).WithSkip(skip)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewFeedError("read response", err).
			WithEndpoint(listEndpoint).WithSkip(skip)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewFeedError(
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil).
			WithEndpoint(listEndpoint).WithSkip(skip)
	}

	var page listResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.NewFeedError("unmarshal response", err).
			WithEndpoint(listEndpoint).WithSkip(skip)
	}

	if !page.Success {
		return nil, errors.NewFeedError("page request rejected", errors.ErrAPIFailure).
			WithEndpoint(listEndpoint).WithSkip(skip)
	}

	return page.Result, nil
}
