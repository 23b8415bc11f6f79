// Package serpapi talks to the SerpAPI google_flights engine.
package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider"
)

const (
	ProviderName = "serpapi"

	maxBodyBytes = 10 << 20

	noResultsMessage = "hasn't returned any results"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type callKind int

const (
	searchCall callKind = iota
	bookingCall
)

type Client struct {
	Name       string
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	Limiter    flightprovider.Limiter
	HTTPClient Doer
}

func NewClient(config flightprovider.FlightProviderConfig, httpClient Doer) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		Name:       ProviderName,
		BaseURL:    config.BaseURL,
		APIKey:     config.APIKey,
		Timeout:    config.Timeout,
		MaxRetries: config.MaxRetries,
		Limiter:    config.Limiter,
		HTTPClient: httpClient,
	}
}

// Search runs one flight search query.
func (c *Client) Search(ctx context.Context, params url.Values) (flightprovider.SearchResponse, error) {
	var resp flightprovider.SearchResponse
	if err := c.call(ctx, searchCall, params, &resp); err != nil {
		return flightprovider.SearchResponse{}, err
	}

	if resp.Error != "" {
		return flightprovider.SearchResponse{}, bodyError(resp.Error, flightprovider.ErrNoResults)
	}

	return resp, nil
}

// BookingOptions resolves a booking token into the provider's booking options.
func (c *Client) BookingOptions(ctx context.Context, params url.Values) (flightprovider.BookingResponse, error) {
	var resp flightprovider.BookingResponse
	if err := c.call(ctx, bookingCall, params, &resp); err != nil {
		return flightprovider.BookingResponse{}, err
	}

	if resp.Error != "" {
		return flightprovider.BookingResponse{}, bodyError(resp.Error, flightprovider.ErrNoBookingOptions)
	}

	if len(resp.BookingOptions) == 0 {
		return flightprovider.BookingResponse{}, flightprovider.ErrNoBookingOptions
	}

	return resp, nil
}

// bodyError maps the error field of a 200 response. An empty result set
// becomes empty, anything else is a provider failure.
func bodyError(message string, empty error) error {
	if strings.Contains(strings.ToLower(message), noResultsMessage) {
		return empty
	}

	return exception.New(exception.KindProvider, fmt.Sprintf("Flight provider error: %s", message))
}

func (c *Client) call(ctx context.Context, kind callKind, params url.Values, out any) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	query := make(url.Values, len(params)+1)
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}
	query.Set("api_key", c.APIKey)

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 200ms * 2^(attempt-1)
			backoff := time.Duration(200*(1<<(attempt-1))) * time.Millisecond
			slog.InfoContext(ctx, "retrying with exponential backoff", "backoff", backoff, "next_attempt", attempt+1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return c.contextError(ctx.Err())
			}
		}

		if err := c.allow(ctx); err != nil {
			return err
		}

		slog.DebugContext(ctx, "calling flight provider",
			slog.String("provider", c.Name),
			slog.Int("attempt", attempt+1),
			paramsAttr(params))

		status, body, err := c.send(ctx, query)
		if err != nil {
			if ctx.Err() != nil || isTimeout(err) {
				return c.contextError(err)
			}

			lastErr = exception.Wrap(exception.KindProvider, "Network error while calling flight provider", err)
			slog.WarnContext(ctx, "flight provider call failed", "attempt", attempt+1, "error", err)
			continue
		}

		if status >= http.StatusInternalServerError {
			lastErr = exception.New(exception.KindProvider,
				fmt.Sprintf("API request failed with status %d", status))
			slog.WarnContext(ctx, "flight provider returned server error", "attempt", attempt+1, "status", status)
			continue
		}

		return interpret(kind, status, body, out)
	}

	return lastErr
}

func (c *Client) allow(ctx context.Context) error {
	if c.Limiter == nil {
		return nil
	}

	allowed, err := c.Limiter.Allow(ctx, c.Name)
	if err != nil {
		return exception.Wrap(exception.KindProvider, "failed to rate limit", err)
	}

	if !allowed {
		return flightprovider.ErrRateLimitExceeded
	}

	return nil
}

func (c *Client) send(ctx context.Context, query url.Values) (int, []byte, error) {
	endpoint := c.BaseURL
	if strings.Contains(endpoint, "?") {
		endpoint += "&" + query.Encode()
	} else {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}

func (c *Client) contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		return flightprovider.ErrTimeout
	}

	return exception.Wrap(exception.KindProvider, "flight provider call cancelled", err)
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// interpret maps a non-5xx provider response onto the error taxonomy or
// decodes it into out.
func interpret(kind callKind, status int, body []byte, out any) error {
	switch status {
	case http.StatusOK:
		if err := json.Unmarshal(body, out); err != nil {
			return exception.Wrap(exception.KindProvider, "Invalid response format from flight provider", err)
		}
		return nil
	case http.StatusTooManyRequests:
		return flightprovider.ErrRateLimitExceeded
	case http.StatusUnauthorized:
		return flightprovider.ErrInvalidAPIKey
	case http.StatusBadRequest:
		return badRequest(kind, body)
	default:
		return exception.New(exception.KindProvider,
			fmt.Sprintf("API request failed with status %d", status))
	}
}

func badRequest(kind callKind, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		if kind == bookingCall {
			return exception.New(exception.KindValidation,
				"API request validation failed. The token may be expired or malformed.")
		}
		return exception.New(exception.KindValidation, "Invalid request parameters sent to flight provider")
	}

	lower := strings.ToLower(payload.Error)
	if kind == bookingCall && (strings.Contains(lower, "token") || strings.Contains(lower, "expired")) {
		return flightprovider.ErrTokenExpired
	}

	return exception.New(exception.KindValidation, fmt.Sprintf("API validation error: %s", payload.Error))
}

func paramsAttr(params url.Values) slog.Attr {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, slog.String(key, params.Get(key)))
	}

	return slog.Group("params", attrs...)
}
