package dto

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
)

type StopPreference string

const (
	StopsAny        StopPreference = "any"
	StopsNonStop    StopPreference = "non_stop"
	StopsMaxOneStop StopPreference = "max_one_stop"
)

type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

type TripType string

const (
	TripOneWay    TripType = "one_way"
	TripRoundTrip TripType = "round_trip"
)

// TravelQuery is what the text extractor hands over for one search.
// Dates are free text such as "15 Jun 2025" or "Not specified".
type TravelQuery struct {
	Destination string         `json:"destination"`
	Departure   string         `json:"departure"`
	Return      string         `json:"return,omitempty"`
	Origin      string         `json:"origin,omitempty"`
	Stops       StopPreference `json:"stops,omitempty" validate:"omitempty,oneof=any non_stop max_one_stop"`
	CabinClass  CabinClass     `json:"cabin_class,omitempty" validate:"omitempty,oneof=economy premium_economy business first"`
}

type Flight struct {
	Airline          string   `json:"airline"`
	FlightNumber     string   `json:"flight_number"`
	Route            string   `json:"route"`
	DepartureID      string   `json:"departure_id"`
	ArrivalID        string   `json:"arrival_id"`
	DepartureTime    string   `json:"departure_time"`
	ArrivalTime      string   `json:"arrival_time"`
	RawDepartureTime string   `json:"raw_departure_time"`
	Duration         Duration `json:"duration"`
	Price            Price    `json:"price"`
	Stops            int      `json:"stops"`
	StopLabel        string   `json:"stop_label"`
	Layovers         []string `json:"layovers"`
	BookingToken     string   `json:"booking_token,omitempty"`
	DepartureToken   string   `json:"departure_token,omitempty"`
	// PrimaryToken is nil when the provider sent neither token; booking
	// options cannot be resolved for such a flight.
	PrimaryToken  *string `json:"primary_token"`
	BookingHandle string  `json:"booking_handle,omitempty"`
	DeepLink      string  `json:"deep_link,omitempty"`
}

type Duration struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type SearchFlightRequest struct {
	TravelQuery
	FilterOption *FilterOption `json:"filter,omitempty"`
}

func (s *SearchFlightRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchFlightRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.New(exception.KindBadRequest, err.Error())
	}

	if s.FilterOption != nil {
		if s.FilterOption.MinPrice != nil && s.FilterOption.MaxPrice != nil &&
			*s.FilterOption.MaxPrice <= *s.FilterOption.MinPrice {
			return exception.New(exception.KindBadRequest, "max_price must be greater than min_price")
		}

		if (s.FilterOption.DepartureTimeStart == nil) != (s.FilterOption.DepartureTimeEnd == nil) {
			return exception.New(exception.KindBadRequest,
				"departure_time_start and departure_time_end must be set together")
		}
	}

	return nil
}

type FilterOption struct {
	MinPrice           *float64 `json:"min_price,omitempty" validate:"omitempty,gt=0"`
	MaxPrice           *float64 `json:"max_price,omitempty" validate:"omitempty,gt=0"`
	MaxStops           *int     `json:"max_stops,omitempty" validate:"omitempty,gte=0"`
	Airline            *string  `json:"airline,omitempty"`
	DepartureTimeStart *string  `json:"departure_time_start,omitempty" validate:"omitempty,datetime=15:04"`
	DepartureTimeEnd   *string  `json:"departure_time_end,omitempty" validate:"omitempty,datetime=15:04"`
}

// SearchInfo describes the whole query after resolution.
type SearchInfo struct {
	From          string `json:"from"`
	To            string `json:"to"`
	FromCity      string `json:"from_city"`
	ToCity        string `json:"to_city"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers"`
	CabinClass    string `json:"cabin_class"`
}

type LegSearchInfo struct {
	From     string `json:"from"`
	To       string `json:"to"`
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
	Date     string `json:"date"`
}

// LegResult is the outcome of one directional search. A failed leg
// carries Error and no flights.
type LegResult struct {
	Success       bool            `json:"success"`
	Error         string          `json:"error,omitempty"`
	Flights       []Flight        `json:"flights"`
	SearchInfo    LegSearchInfo   `json:"search_info"`
	PriceInsights json.RawMessage `json:"price_insights"`
}

// SearchFlightResponse is the response struct for the search flight endpoint
type SearchFlightResponse struct {
	TripType   TripType   `json:"trip_type"`
	SearchInfo SearchInfo `json:"search_info"`
	Outbound   LegResult  `json:"outbound"`
	Return     *LegResult `json:"return,omitempty"`
}
