package flightprovider

import (
	"bytes"
	"encoding/json"
)

// Number is a JSON number that tolerates strings, nulls and other junk.
// Anything that is not a number decodes as invalid instead of failing the
// whole response.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	*n = Number{Value: v, Valid: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(n.Value)
}

// Positive returns the value only when it is a number greater than zero.
func (n Number) Positive() (float64, bool) {
	if !n.Valid || n.Value <= 0 {
		return 0, false
	}

	return n.Value, true
}

// Strings accepts either a single string or a list of strings.
type Strings []string

func (s *Strings) UnmarshalJSON(data []byte) error {
	*s = nil

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single != "" {
			*s = Strings{single}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
	}

	return nil
}

type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// Segment is one flight of a possibly multi-segment itinerary.
type Segment struct {
	DepartureAirport Airport  `json:"departure_airport"`
	ArrivalAirport   Airport  `json:"arrival_airport"`
	Duration         Number   `json:"duration"`
	Airplane         string   `json:"airplane"`
	Airline          string   `json:"airline"`
	AirlineLogo      string   `json:"airline_logo"`
	TravelClass      string   `json:"travel_class"`
	FlightNumber     string   `json:"flight_number"`
	Legroom          string   `json:"legroom"`
	Extensions       []string `json:"extensions"`
	Overnight        bool     `json:"overnight"`
	OftenDelayed     bool     `json:"often_delayed_by_over_30_min"`
}

type Layover struct {
	Duration  Number `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight"`
}

// Itinerary is one entry of best_flights or other_flights.
type Itinerary struct {
	Flights        []Segment       `json:"flights"`
	Layovers       []Layover       `json:"layovers"`
	TotalDuration  Number          `json:"total_duration"`
	Price          Number          `json:"price"`
	TotalPrice     Number          `json:"total_price"`
	Type           string          `json:"type"`
	AirlineLogo    string          `json:"airline_logo"`
	BookingToken   string          `json:"booking_token"`
	DepartureToken string          `json:"departure_token"`
	Emissions      json.RawMessage `json:"carbon_emissions,omitempty"`
}

type SearchResponse struct {
	BestFlights   []Itinerary     `json:"best_flights"`
	OtherFlights  []Itinerary     `json:"other_flights"`
	PriceInsights json.RawMessage `json:"price_insights,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// Candidates returns best_flights followed by other_flights.
func (r SearchResponse) Candidates() []Itinerary {
	candidates := make([]Itinerary, 0, len(r.BestFlights)+len(r.OtherFlights))
	candidates = append(candidates, r.BestFlights...)
	return append(candidates, r.OtherFlights...)
}

// BookingRequest is the provider's POST-style link to a booking site.
type BookingRequest struct {
	URL      string `json:"url"`
	PostData string `json:"post_data"`
}

type BookingDetail struct {
	BookWith       string          `json:"book_with"`
	MarketedAs     Strings         `json:"marketed_as"`
	Price          Number          `json:"price"`
	OptionTitle    string          `json:"option_title"`
	Extensions     []string        `json:"extensions"`
	BookingRequest *BookingRequest `json:"booking_request"`
	BookingPhone   string          `json:"booking_phone"`
	Link           string          `json:"link"`
}

// RawBookingOption carries either a top-level book_with or a "together" block.
type RawBookingOption struct {
	BookWith        string          `json:"book_with"`
	Price           Number          `json:"price"`
	BookingRequest  *BookingRequest `json:"booking_request"`
	Link            string          `json:"link"`
	SeparateTickets bool            `json:"separate_tickets"`
	Together        *BookingDetail  `json:"together"`
}

type BookingResponse struct {
	BookingOptions  []RawBookingOption `json:"booking_options"`
	SelectedFlights json.RawMessage    `json:"selected_flights,omitempty"`
	BaggagePrices   json.RawMessage    `json:"baggage_prices,omitempty"`
	BookingPhone    string             `json:"booking_phone,omitempty"`
	PriceInsights   json.RawMessage    `json:"price_insights,omitempty"`
	Error           string             `json:"error,omitempty"`
}
