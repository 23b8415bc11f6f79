package flight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/airport"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/utils"
)

var (
	errNoSegments    = errors.New("no flight segments")
	errNoAirline     = errors.New("missing airline")
	errNoFlightNum   = errors.New("missing flight number")
	errNoTimes       = errors.New("missing departure or arrival time")
	errNoDuration    = errors.New("missing or invalid total duration")
	errNoPrice       = errors.New("missing or invalid price")
	errNoAirportCode = errors.New("missing departure or arrival airport id")
)

// ParseFlights converts provider itineraries into flights ordered by
// departure time. Incomplete itineraries are skipped, never patched.
func ParseFlights(ctx context.Context, resp flightprovider.SearchResponse) []dto.Flight {
	candidates := resp.Candidates()
	flights := make([]dto.Flight, 0, len(candidates))

	for i, itinerary := range candidates {
		flight, err := extractFlight(itinerary)
		if err != nil {
			slog.DebugContext(ctx, "skipping flight record",
				slog.Int("index", i),
				slog.String("reason", err.Error()))
			continue
		}

		flights = append(flights, flight)
	}

	slog.DebugContext(ctx, "parsed flight records",
		slog.Int("candidates", len(candidates)),
		slog.Int("parsed", len(flights)))

	return SortByDeparture(flights)
}

func extractFlight(itinerary flightprovider.Itinerary) (dto.Flight, error) {
	if len(itinerary.Flights) == 0 {
		return dto.Flight{}, errNoSegments
	}

	first := itinerary.Flights[0]
	last := itinerary.Flights[len(itinerary.Flights)-1]

	if strings.TrimSpace(first.Airline) == "" {
		return dto.Flight{}, errNoAirline
	}

	if strings.TrimSpace(first.FlightNumber) == "" {
		return dto.Flight{}, errNoFlightNum
	}

	departureTime := first.DepartureAirport.Time
	arrivalTime := last.ArrivalAirport.Time
	if departureTime == "" || arrivalTime == "" {
		return dto.Flight{}, errNoTimes
	}

	totalMinutes, ok := itinerary.TotalDuration.Positive()
	if !ok {
		return dto.Flight{}, errNoDuration
	}

	price, ok := itinerary.Price.Positive()
	if !ok {
		if price, ok = itinerary.TotalPrice.Positive(); !ok {
			return dto.Flight{}, errNoPrice
		}
	}

	departureID := first.DepartureAirport.ID
	arrivalID := last.ArrivalAirport.ID
	if departureID == "" || arrivalID == "" {
		return dto.Flight{}, errNoAirportCode
	}

	layovers := make([]string, 0, len(itinerary.Layovers))
	for _, layover := range itinerary.Layovers {
		id := layover.ID
		if id == "" {
			id = "Unknown"
		}
		layovers = append(layovers, id)
	}

	stops := len(itinerary.Flights) - 1
	minutes := int(totalMinutes)

	return dto.Flight{
		Airline:          first.Airline,
		FlightNumber:     first.FlightNumber,
		Route:            fmt.Sprintf("%s → %s", departureID, arrivalID),
		DepartureID:      departureID,
		ArrivalID:        arrivalID,
		DepartureTime:    displayTime(departureTime, departureID),
		ArrivalTime:      displayTime(arrivalTime, arrivalID),
		RawDepartureTime: departureTime,
		Duration: dto.Duration{
			TotalMinutes: minutes,
			Formatted:    utils.ConvertMinutesToDuration(int64(minutes)),
		},
		Price: dto.Price{
			Amount:    price,
			Currency:  Currency,
			Formatted: utils.FormatRupee(price),
		},
		Stops:          stops,
		StopLabel:      stopLabel(stops, layovers),
		Layovers:       layovers,
		BookingToken:   itinerary.BookingToken,
		DepartureToken: itinerary.DepartureToken,
		PrimaryToken:   primaryToken(itinerary.BookingToken, itinerary.DepartureToken),
	}, nil
}

// displayTime keeps the clock part of "2025-06-15 06:15" and labels it
// with the airport's timezone.
func displayTime(raw, airportCode string) string {
	clock := raw
	if len(raw) > 10 {
		if _, after, found := strings.Cut(raw, " "); found {
			clock = after
		} else {
			clock = raw[len(raw)-5:]
		}
	}

	return fmt.Sprintf("%s %s", clock, airport.TimezoneLabel(airportCode))
}

func stopLabel(stops int, layovers []string) string {
	if stops == 0 {
		return "Non-Stop"
	}

	label := fmt.Sprintf("%d stop(s)", stops)
	if len(layovers) > 0 {
		label += fmt.Sprintf(" (via %s)", strings.Join(layovers, ", "))
	}

	return label
}

func primaryToken(bookingToken, departureToken string) *string {
	switch {
	case bookingToken != "":
		return &bookingToken
	case departureToken != "":
		return &departureToken
	default:
		return nil
	}
}
