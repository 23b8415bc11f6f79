//go:build unit

package dto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
)

func TestSearchFlightRequest_Validate(t *testing.T) {
	// Initialize validator for tests
	_ = InitValidator()

	validateRequest := func(req SearchFlightRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				assert.Equal(t, exception.KindBadRequest, exception.KindOf(err))
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	ptrFloat := func(f float64) *float64 { return &f }
	ptrString := func(s string) *string { return &s }

	validQuery := TravelQuery{
		Destination: "Singapore",
		Departure:   "15 Jun 2025",
		Return:      "21 Jun 2025",
		Stops:       StopsNonStop,
		CabinClass:  CabinEconomy,
	}

	t.Run("valid_query", validateRequest(SearchFlightRequest{TravelQuery: validQuery}, false, ""))

	t.Run("empty_preferences_allowed", validateRequest(SearchFlightRequest{
		TravelQuery: TravelQuery{Destination: "Singapore"},
	}, false, ""))

	t.Run("blank_destination_left_to_builder", validateRequest(SearchFlightRequest{
		TravelQuery: TravelQuery{Destination: "Not specified"},
	}, false, ""))

	t.Run("invalid_cabin_class", validateRequest(SearchFlightRequest{
		TravelQuery: TravelQuery{Destination: "Singapore", CabinClass: "steerage"},
	}, true, "cabin_class must be one of [economy premium_economy business first]"))

	t.Run("invalid_stops", validateRequest(SearchFlightRequest{
		TravelQuery: TravelQuery{Destination: "Singapore", Stops: "two"},
	}, true, "stops must be one of [any non_stop max_one_stop]"))

	t.Run("invalid_price_range", validateRequest(SearchFlightRequest{
		TravelQuery: validQuery,
		FilterOption: &FilterOption{
			MinPrice: ptrFloat(1000),
			MaxPrice: ptrFloat(500),
		},
	}, true, "max_price must be greater than min_price"))

	t.Run("half_open_time_window", validateRequest(SearchFlightRequest{
		TravelQuery: validQuery,
		FilterOption: &FilterOption{
			DepartureTimeStart: ptrString("06:00"),
		},
	}, true, "departure_time_start and departure_time_end must be set together"))

	t.Run("bad_time_format", validateRequest(SearchFlightRequest{
		TravelQuery: validQuery,
		FilterOption: &FilterOption{
			DepartureTimeStart: ptrString("6am"),
			DepartureTimeEnd:   ptrString("10:00"),
		},
	}, true, "departure_time_start does not match the 15:04 format"))
}

func TestBookingOptionsRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req BookingOptionsRequest, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			assert.EqualError(t, err, wantMsg)
		}
	}

	t.Run("token_only", validateRequest(BookingOptionsRequest{Token: "abc"}, ""))
	t.Run("full_context", validateRequest(BookingOptionsRequest{
		Token: "abc", DepartureID: "BLR", ArrivalID: "SIN", OutboundDate: "2025-06-15",
	}, ""))
	t.Run("missing_token", validateRequest(BookingOptionsRequest{}, "token is a required field"))
	t.Run("bad_airport", validateRequest(BookingOptionsRequest{Token: "abc", DepartureID: "BLRX"},
		"departure_id must be 3 characters in length"))
	t.Run("bad_date", validateRequest(BookingOptionsRequest{Token: "abc", OutboundDate: "15 Jun 2025"},
		"outbound_date does not match the 2006-01-02 format"))
}
