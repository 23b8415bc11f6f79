package flightprovider

import (
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
)

var ErrRateLimitExceeded = exception.New(exception.KindRateLimit,
	"Rate limit exceeded. Please wait a few minutes before searching again.")

var ErrInvalidAPIKey = exception.New(exception.KindAuth,
	"Invalid API key. Please check your flight provider configuration.")

var ErrTokenExpired = exception.New(exception.KindTokenExpired,
	"Booking token has expired or is invalid. Please run a new flight search to get fresh booking options.")

var ErrNoBookingOptions = exception.New(exception.KindNoOptions,
	"No booking options available for this flight. The token may have expired.")

var ErrTimeout = exception.New(exception.KindProvider,
	"Flight provider request timed out. Please try again.")

var ErrProviderUnavailable = exception.New(exception.KindProvider,
	"Flight provider is temporarily unavailable. Please try again.")

// ErrNoResults is the provider reporting an empty result set in an
// otherwise successful response.
var ErrNoResults = exception.New(exception.KindNotFound,
	"No flights found for this route and date. Please try a different search.")
