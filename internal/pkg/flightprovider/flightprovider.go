package flightprovider

import (
	"context"
	"net/url"
	"time"
)

// config for flight provider
type FlightProviderConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	Limiter    Limiter
}

// FlightProvider executes provider queries. Params are passed through
// untouched except for the credential, which the provider adds itself.
type FlightProvider interface {
	Search(ctx context.Context, params url.Values) (SearchResponse, error)
	BookingOptions(ctx context.Context, params url.Values) (BookingResponse, error)
}

// Limiter reports whether one more outbound call is allowed now.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
