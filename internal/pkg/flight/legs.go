package flight

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/airport"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/traveldate"
)

const (
	Engine   = "google_flights"
	Currency = "INR"

	// provider "type" values
	TypeRoundTrip = "1"
	TypeOneWay    = "2"
)

type Direction string

const (
	Outbound Direction = "outbound"
	Return   Direction = "return"
)

var ErrUnresolvableDestination = exception.New(exception.KindBuild,
	"Could not determine the destination city. Please try a different search with a destination.")

var travelClassCodes = map[dto.CabinClass]int{
	dto.CabinEconomy:        1,
	dto.CabinPremiumEconomy: 2,
	dto.CabinBusiness:       3,
	dto.CabinFirst:          4,
}

var stopCodes = map[dto.StopPreference]int{
	dto.StopsAny:        0,
	dto.StopsNonStop:    1,
	dto.StopsMaxOneStop: 2,
}

// SearchLeg is one one-way provider query. Values are immutable once built.
type SearchLeg struct {
	Direction   Direction
	Origin      string
	Destination string
	Date        string
	CabinClass  dto.CabinClass
	TravelClass int
	Stops       int
}

// Params renders the leg as provider query parameters, without credentials.
// Every leg is a one-way query with deep search enabled.
func (l SearchLeg) Params() url.Values {
	return url.Values{
		"engine":        {Engine},
		"departure_id":  {l.Origin},
		"arrival_id":    {l.Destination},
		"outbound_date": {l.Date},
		"currency":      {Currency},
		"hl":            {"en"},
		"gl":            {"in"},
		"adults":        {"1"},
		"type":          {TypeOneWay},
		"travel_class":  {strconv.Itoa(l.TravelClass)},
		"stops":         {strconv.Itoa(l.Stops)},
		"deep_search":   {"true"},
		"show_hidden":   {"true"},
	}
}

func (l SearchLeg) SearchInfo() dto.LegSearchInfo {
	return dto.LegSearchInfo{
		From:     l.Origin,
		To:       l.Destination,
		FromCity: airport.CityName(l.Origin),
		ToCity:   airport.CityName(l.Destination),
		Date:     l.Date,
	}
}

type Legs struct {
	Outbound SearchLeg
	Return   *SearchLeg
}

func (l Legs) TripType() dto.TripType {
	if l.Return != nil {
		return dto.TripRoundTrip
	}

	return dto.TripOneWay
}

type LegBuilder struct {
	dates         *traveldate.Normalizer
	defaultOrigin string
}

func NewLegBuilder(dates *traveldate.Normalizer, defaultOrigin string) *LegBuilder {
	return &LegBuilder{
		dates:         dates,
		defaultOrigin: defaultOrigin,
	}
}

// Build splits a query into an outbound leg and, for round trips, an
// independent reversed one-way return leg.
func (b *LegBuilder) Build(query dto.TravelQuery) (Legs, error) {
	if !isSpecified(query.Destination) {
		return Legs{}, ErrUnresolvableDestination
	}

	originName := query.Origin
	if !isSpecified(originName) {
		originName = b.defaultOrigin
	}

	origin := airport.Resolve(originName)
	destination := airport.Resolve(query.Destination)

	cabin := query.CabinClass
	if _, ok := travelClassCodes[cabin]; !ok {
		cabin = dto.CabinEconomy
	}

	stops, ok := stopCodes[query.Stops]
	if !ok {
		stops = stopCodes[dto.StopsAny]
	}

	departureDate := b.dates.Normalize(query.Departure)

	legs := Legs{
		Outbound: SearchLeg{
			Direction:   Outbound,
			Origin:      origin,
			Destination: destination,
			Date:        departureDate,
			CabinClass:  cabin,
			TravelClass: travelClassCodes[cabin],
			Stops:       stops,
		},
	}

	if traveldate.IsSpecified(query.Return) {
		returnDate := b.dates.Normalize(query.Return)
		if returnDate != departureDate {
			returnLeg := legs.Outbound
			returnLeg.Direction = Return
			returnLeg.Origin, returnLeg.Destination = destination, origin
			returnLeg.Date = returnDate
			legs.Return = &returnLeg
		}
	}

	return legs, nil
}

func isSpecified(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && !strings.EqualFold(value, traveldate.NotSpecified)
}
