package booking

import (
	"net/url"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flight"
)

// RequestParams builds the provider query for a booking-option lookup.
// A flight booking is one-way unless the context explicitly says round
// trip and carries a return date.
func RequestParams(token string, fc FlightContext) url.Values {
	params := url.Values{
		"engine":        {flight.Engine},
		"booking_token": {token},
		"currency":      {flight.Currency},
		"hl":            {"en"},
		"type":          {flight.TypeOneWay},
	}

	if fc.DepartureID != "" {
		params.Set("departure_id", fc.DepartureID)
	}
	if fc.ArrivalID != "" {
		params.Set("arrival_id", fc.ArrivalID)
	}
	if fc.OutboundDate != "" {
		params.Set("outbound_date", fc.OutboundDate)
	}

	if fc.TripType == dto.TripRoundTrip && fc.ReturnDate != "" {
		params.Set("return_date", fc.ReturnDate)
		params.Set("type", flight.TypeRoundTrip)
	}

	return params
}
