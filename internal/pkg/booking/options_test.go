//go:build unit

package booking

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLink = SearchLink{From: "BLR", To: "SIN", Date: "2025-06-15"}

func decodeOptions(t *testing.T, raw string) []flightprovider.RawBookingOption {
	t.Helper()

	var options []flightprovider.RawBookingOption
	require.NoError(t, json.Unmarshal([]byte(raw), &options))

	return options
}

func platforms(options []dto.BookingOption) []string {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.Platform
	}

	return names
}

func TestResolve_TenOptions(t *testing.T) {
	raw := decodeOptions(t, `[
		{"together": {"book_with": "Expedia", "price": 15000}},
		{"together": {"book_with": "MakeMyTrip", "price": 14500, "booking_request": {"url": "https://www.google.com/travel/clk/f", "post_data": "u=abc&tt=1"}}},
		{"together": {"book_with": "MakeMyTrip", "price": 14600}},
		{"together": {"book_with": "Cleartrip", "price": 14700}},
		{"together": {"book_with": "Goibibo", "price": "n/a"}},
		{"together": {"book_with": "Yatra", "price": 14900}},
		{"together": {"book_with": "Air India", "price": 16000}},
		{"together": {"book_with": "IndiGo", "price": 15500}},
		{"together": {"book_with": "Kiwi.com", "price": 13900}},
		{"book_with": "Trip.com", "price": 14000}
	]`)

	got := Resolve(context.Background(), raw, testLink)

	require.Len(t, got, MaxOptions)
	assert.Equal(t, []string{"MakeMyTrip", "Cleartrip", "Goibibo", "Air India"}, platforms(got))

	mmt := got[0]
	assert.Equal(t, "https://www.google.com/travel/clk/f?u=abc&tt=1", mmt.URL)
	require.NotNil(t, mmt.Price)
	assert.Equal(t, 14500.0, *mmt.Price)
	assert.Equal(t, "₹14,500", mmt.PriceDisplay)
	assert.False(t, mmt.Fallback)

	goibibo := got[2]
	assert.Nil(t, goibibo.Price)
	assert.Equal(t, "See prices", goibibo.PriceDisplay)
	assert.True(t, strings.HasPrefix(goibibo.URL, "https://www.goibibo.com/flights/BLR-SIN/"))
}

func TestResolve_SynthesizesMissingPreferred(t *testing.T) {
	raw := decodeOptions(t, `[
		{"together": {"book_with": "Air India", "price": 16000, "booking_request": {"url": "https://www.airindia.in/pay?x=1"}}},
		{"together": {"book_with": "Expedia", "price": 15000}}
	]`)

	got := Resolve(context.Background(), raw, testLink)

	assert.Equal(t, []string{"MakeMyTrip", "Cleartrip", "Air India", "Expedia"}, platforms(got))
	assert.True(t, got[0].Fallback)
	assert.True(t, got[1].Fallback)
	assert.False(t, got[2].Fallback)
	assert.Equal(t, []string{"Direct Search"}, got[0].MarketedAs)
	assert.Contains(t, got[0].URL, "itinerary=BLR-SIN-15/06/2025")
	assert.Contains(t, got[1].URL, "depart_date=15/06/2025")
	assert.Equal(t, "https://www.airindia.in/pay?x=1", got[2].URL)
}

func TestResolve_SyntheticPreferredAfterRealPreferred(t *testing.T) {
	raw := decodeOptions(t, `[
		{"together": {"book_with": "Kiwi.com", "price": 13000}},
		{"together": {"book_with": "Cleartrip", "price": 14000}}
	]`)

	got := Resolve(context.Background(), raw, testLink)

	assert.Equal(t, []string{"MakeMyTrip", "Cleartrip", "Goibibo", "Kiwi.com"}, platforms(got))
	assert.True(t, got[0].Fallback)
	assert.False(t, got[1].Fallback)
	assert.True(t, got[2].Fallback)
}

func TestResolve_NoSynthesisWhenFull(t *testing.T) {
	raw := decodeOptions(t, `[
		{"book_with": "Expedia"}, {"book_with": "Kiwi.com"}, {"book_with": "Trip.com"}, {"book_with": "Gotogate"}
	]`)

	got := Resolve(context.Background(), raw, testLink)

	assert.Equal(t, []string{"Expedia", "Kiwi.com", "Trip.com", "Gotogate"}, platforms(got))
	for _, o := range got {
		assert.False(t, o.Fallback)
	}
}

func TestResolve_NoSynthesisWithoutRoute(t *testing.T) {
	raw := decodeOptions(t, `[{"together": {"book_with": "Expedia", "price": 1}}]`)

	got := Resolve(context.Background(), raw, SearchLink{})
	assert.Equal(t, []string{"Expedia"}, platforms(got))
	assert.Empty(t, got[0].URL)
}

func TestResolve_MarketedAsName(t *testing.T) {
	raw := decodeOptions(t, `[{"together": {"marketed_as": ["Goibibo"], "price": 9000}}]`)

	got := Resolve(context.Background(), raw, testLink)

	require.NotEmpty(t, got)
	assert.Equal(t, "MakeMyTrip", got[0].Platform)
	assert.Equal(t, "Goibibo", got[1].Platform)
	assert.Equal(t, int(TierPreferred), got[1].Tier)
}

func TestResolveURL(t *testing.T) {
	longClk := "https://www.google.com/travel/clk?pc=AA1234567890abcdef&pcurl=https%3A%2F%2Fexample.com"

	urlRequest := func(request *flightprovider.BookingRequest, rawURL, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, ResolveURL("Cleartrip", request, rawURL, testLink))
		}
	}

	t.Run("post_to_get", urlRequest(&flightprovider.BookingRequest{
		URL: "https://www.google.com/travel/clk/f", PostData: "u=1&v=2",
	}, "", "https://www.google.com/travel/clk/f?u=1&v=2"))
	t.Run("post_to_get_existing_query", urlRequest(&flightprovider.BookingRequest{
		URL: "https://book.example.com/go?a=1", PostData: "b=2",
	}, "", "https://book.example.com/go?a=1&b=2"))
	t.Run("complete_google_redirect", urlRequest(nil, longClk, longClk))
	t.Run("incomplete_google_redirect", urlRequest(&flightprovider.BookingRequest{
		URL: "https://www.google.com/travel/clk/f",
	}, "", PlatformURL("Cleartrip", testLink)))
	t.Run("external_link", urlRequest(nil, "https://www.cleartrip.com/pay/123", "https://www.cleartrip.com/pay/123"))
	t.Run("other_google_link", urlRequest(nil, "https://www.google.com/flights", PlatformURL("Cleartrip", testLink)))
	t.Run("nothing", urlRequest(nil, "", PlatformURL("Cleartrip", testLink)))
	t.Run("request_url_over_short_redirect", urlRequest(&flightprovider.BookingRequest{
		URL: "https://www.cleartrip.com/checkout/abc123",
	}, "https://www.google.com/travel/clk/f", "https://www.cleartrip.com/checkout/abc123"))
	t.Run("request_url_over_external_link", urlRequest(&flightprovider.BookingRequest{
		URL: "https://www.cleartrip.com/checkout/abc123",
	}, "https://tracker.example.com/x", "https://www.cleartrip.com/checkout/abc123"))
}

func TestResolveURL_UnknownRoute(t *testing.T) {
	noRoute := func(platform string, rawURL, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, ResolveURL(platform, nil, rawURL, SearchLink{}))
		}
	}

	t.Run("no_link", noRoute("Kiwi.com", "", ""))
	t.Run("short_redirect", noRoute("Cleartrip", "https://www.google.com/travel/clk/f", ""))
	t.Run("external_link_kept", noRoute("Kiwi.com", "https://www.kiwi.com/booking/77", "https://www.kiwi.com/booking/77"))
}
