//go:build unit

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/booking"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// providerToken looks like a real provider token: 240 base64 characters.
var providerToken = base64.StdEncoding.EncodeToString([]byte(strings.Repeat("flight-token", 15)))

const bookingResponse = `{
  "selected_flights": [{"flights": [{"flight_number": "6E 1005"}]}],
  "baggage_prices": {"together": ["1 free carry-on"]},
  "booking_phone": "+91 99999 99999",
  "booking_options": [
    {"together": {"book_with": "Air India", "price": 16000, "link": "https://www.airindia.in/pay"}},
    {"together": {"book_with": "MakeMyTrip", "price": 15500, "booking_request": {"url": "https://www.google.com/travel/clk/f", "post_data": "u=mmt"}}},
    {"together": {"book_with": "Expedia", "price": 15900}}
  ]
}`

func bookingResp(t *testing.T) flightprovider.BookingResponse {
	t.Helper()

	var resp flightprovider.BookingResponse
	require.NoError(t, json.Unmarshal([]byte(bookingResponse), &resp))

	return resp
}

func TestBookingService_BookingOptions(t *testing.T) {
	type mockField struct {
		provider *flightprovider.MockFlightProvider
	}

	bookingRequest := func(
		req dto.BookingOptionsRequest,
		setupMock func(m mockField),
		check func(t *testing.T, got dto.BookingOptionsResponse),
		wantKind exception.Kind,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := mockField{
				provider: flightprovider.NewMockFlightProvider(t),
			}
			setupMock(m)

			s := NewBookingService(m.provider)

			got, err := s.BookingOptions(context.Background(), req)

			if wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, wantKind, exception.KindOf(err))
				return
			}

			require.NoError(t, err)
			check(t, got)
		}
	}

	resp := bookingResp(t)

	roundTripHandle, err := booking.EncodeHandle(providerToken, booking.FlightContext{
		DepartureID:  "BLR",
		ArrivalID:    "SIN",
		OutboundDate: "2025-06-15",
		ReturnDate:   "2025-06-21",
		TripType:     dto.TripRoundTrip,
	})
	require.NoError(t, err)

	t.Run("handle_with_round_trip_context", bookingRequest(
		dto.BookingOptionsRequest{Token: roundTripHandle, DepartureID: "DEL"},
		func(m mockField) {
			m.provider.On("BookingOptions", mock.Anything, mock.MatchedBy(func(params url.Values) bool {
				return params.Get("booking_token") == providerToken &&
					params.Get("departure_id") == "BLR" &&
					params.Get("return_date") == "2025-06-21" &&
					params.Get("type") == "1"
			})).Return(resp, nil).Once()
		},
		func(t *testing.T, got dto.BookingOptionsResponse) {
			require.Len(t, got.BookingOptions, 4)

			platforms := make([]string, 0, len(got.BookingOptions))
			for _, o := range got.BookingOptions {
				platforms = append(platforms, o.Platform)
			}
			assert.Equal(t, []string{"MakeMyTrip", "Cleartrip", "Air India", "Expedia"}, platforms)

			assert.Equal(t, "https://www.google.com/travel/clk/f?u=mmt", got.BookingOptions[0].URL)
			assert.True(t, got.BookingOptions[1].Fallback)
			assert.Contains(t, got.BookingOptions[1].URL, "from=BLR")

			assert.Equal(t, "+91 99999 99999", got.BookingPhone)
			assert.JSONEq(t, `{"together": ["1 free carry-on"]}`, string(got.BaggagePrices))
			assert.NotEmpty(t, got.SelectedFlights)
		},
		"",
	))

	t.Run("raw_token_is_one_way", bookingRequest(
		dto.BookingOptionsRequest{Token: providerToken, DepartureID: "BLR", ArrivalID: "DEL", OutboundDate: "2025-06-15"},
		func(m mockField) {
			m.provider.On("BookingOptions", mock.Anything, mock.MatchedBy(func(params url.Values) bool {
				return params.Get("booking_token") == providerToken &&
					params.Get("arrival_id") == "DEL" &&
					!params.Has("return_date") &&
					params.Get("type") == "2"
			})).Return(resp, nil).Once()
		},
		func(t *testing.T, got dto.BookingOptionsResponse) {
			require.NotEmpty(t, got.BookingOptions)
			assert.Contains(t, got.BookingOptions[1].URL, "to=DEL", "fallbacks follow the caller's route")
		},
		"",
	))

	t.Run("raw_token_without_route_skips_fallbacks", bookingRequest(
		dto.BookingOptionsRequest{Token: providerToken},
		func(m mockField) {
			m.provider.On("BookingOptions", mock.Anything, mock.Anything).Return(resp, nil).Once()
		},
		func(t *testing.T, got dto.BookingOptionsResponse) {
			for _, o := range got.BookingOptions {
				assert.False(t, o.Fallback, o.Platform)
			}
		},
		"",
	))

	t.Run("invalid_token_never_calls_provider", bookingRequest(
		dto.BookingOptionsRequest{Token: "short"},
		func(mockField) {},
		nil,
		exception.KindInvalidToken,
	))

	t.Run("handle_with_corrupted_inner_token", bookingRequest(
		dto.BookingOptionsRequest{Token: mustHandle(t, providerToken[:120]+"\n"+providerToken[121:])},
		func(mockField) {},
		nil,
		exception.KindInvalidToken,
	))

	t.Run("expired_token", bookingRequest(
		dto.BookingOptionsRequest{Token: providerToken},
		func(m mockField) {
			m.provider.On("BookingOptions", mock.Anything, mock.Anything).
				Return(flightprovider.BookingResponse{}, flightprovider.ErrTokenExpired).Once()
		},
		nil,
		exception.KindTokenExpired,
	))

	t.Run("no_options", bookingRequest(
		dto.BookingOptionsRequest{Token: providerToken},
		func(m mockField) {
			m.provider.On("BookingOptions", mock.Anything, mock.Anything).
				Return(flightprovider.BookingResponse{}, flightprovider.ErrNoBookingOptions).Once()
		},
		nil,
		exception.KindNoOptions,
	))
}

func mustHandle(t *testing.T, token string) string {
	t.Helper()

	handle, err := booking.EncodeHandle(token, booking.FlightContext{DepartureID: "BLR"})
	require.NoError(t, err)

	return handle
}
