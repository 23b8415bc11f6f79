package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/airport"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/booking"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flight"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider"
)

// fixed party size for every search
const passengers = 1

type legResult struct {
	Direction flight.Direction
	Result    dto.LegResult
	Error     error
}

type FlightSearchService struct {
	Provider   flightprovider.FlightProvider
	LegBuilder *flight.LegBuilder
}

func NewFlightSearchService(provider flightprovider.FlightProvider, legBuilder *flight.LegBuilder) *FlightSearchService {
	return &FlightSearchService{
		Provider:   provider,
		LegBuilder: legBuilder,
	}
}

// SearchFlights splits the query into one-way legs, searches them and
// returns each leg's flights in departure order.
// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Search one-way or round-trip flights; a round trip is two independent one-way searches
// @Param        request  body      dto.SearchFlightRequest  true  "Travel query"
// @Success      200      {object}  dto.SearchFlightResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      429      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *FlightSearchService) SearchFlights(
	ctx context.Context,
	req dto.SearchFlightRequest,
) (dto.SearchFlightResponse, error) {
	legs, err := s.LegBuilder.Build(req.TravelQuery)
	if err != nil {
		return dto.SearchFlightResponse{}, fmt.Errorf("failed to build search legs: %w", err)
	}

	info := searchInfo(legs)

	if legs.Return == nil {
		result, err := s.searchLeg(ctx, legs.Outbound, req.FilterOption)
		if err != nil {
			return dto.SearchFlightResponse{}, fmt.Errorf("failed to search flights: %w", err)
		}

		if len(result.Flights) == 0 {
			return dto.SearchFlightResponse{}, ErrNoFlightsFound
		}

		return dto.SearchFlightResponse{
			TripType:   dto.TripOneWay,
			SearchInfo: info,
			Outbound:   result,
		}, nil
	}

	results := s.searchLegs(ctx, []flight.SearchLeg{legs.Outbound, *legs.Return}, req.FilterOption)
	outbound, inbound := results[flight.Outbound], results[flight.Return]

	if outbound.Error != nil && inbound.Error != nil {
		return dto.SearchFlightResponse{}, fmt.Errorf("failed to search flights: %w", outbound.Error)
	}

	return dto.SearchFlightResponse{
		TripType:   dto.TripRoundTrip,
		SearchInfo: info,
		Outbound:   outbound.Result,
		Return:     &inbound.Result,
	}, nil
}

// searchLegs runs the legs concurrently. A failed leg is reported in its
// own result and does not cancel the other.
func (s *FlightSearchService) searchLegs(
	ctx context.Context,
	legs []flight.SearchLeg,
	filter *dto.FilterOption,
) map[flight.Direction]legResult {
	results := make(chan legResult, len(legs))
	var wg sync.WaitGroup

	// timeout for each call is set in the provider itself
	wg.Add(len(legs))
	for _, leg := range legs {
		go func(leg flight.SearchLeg) {
			defer wg.Done()
			result, err := s.searchLeg(ctx, leg, filter)
			results <- legResult{
				Direction: leg.Direction,
				Result:    result,
				Error:     err,
			}
		}(leg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	byDirection := make(map[flight.Direction]legResult, len(legs))
	for result := range results {
		if result.Error != nil {
			slog.WarnContext(ctx, "leg search failed",
				slog.String("direction", string(result.Direction)),
				slog.Any("error", result.Error))
		}
		byDirection[result.Direction] = result
	}

	return byDirection
}

func (s *FlightSearchService) searchLeg(
	ctx context.Context,
	leg flight.SearchLeg,
	filter *dto.FilterOption,
) (dto.LegResult, error) {
	resp, err := s.Provider.Search(ctx, leg.Params())
	if errors.Is(err, flightprovider.ErrNoResults) {
		resp, err = flightprovider.SearchResponse{}, nil
	}
	if err != nil {
		return dto.LegResult{
			Error:      errorMessage(err),
			Flights:    []dto.Flight{},
			SearchInfo: leg.SearchInfo(),
		}, err
	}

	flights := flight.ParseFlights(ctx, resp)
	flights = flight.FilterFlights(ctx, flights, filter)

	return dto.LegResult{
		Success:       true,
		Flights:       enrichFlights(ctx, leg, flights),
		SearchInfo:    leg.SearchInfo(),
		PriceInsights: resp.PriceInsights,
	}, nil
}

// enrichFlights attaches the booking handle and a MakeMyTrip search link
// to every flight of the leg.
func enrichFlights(ctx context.Context, leg flight.SearchLeg, flights []dto.Flight) []dto.Flight {
	for i := range flights {
		f := &flights[i]

		if f.PrimaryToken != nil {
			handle, err := booking.EncodeHandle(*f.PrimaryToken, booking.FlightContext{
				DepartureID:  leg.Origin,
				ArrivalID:    leg.Destination,
				OutboundDate: leg.Date,
				TripType:     dto.TripOneWay,
			})
			if err != nil {
				slog.WarnContext(ctx, "failed to encode booking handle",
					slog.String("flight_number", f.FlightNumber),
					slog.Any("error", err))
			} else {
				f.BookingHandle = handle
			}
		}

		f.DeepLink = booking.PlatformURL(booking.PlatformMakeMyTrip, booking.SearchLink{
			From:        leg.Origin,
			To:          leg.Destination,
			Date:        leg.Date,
			Cabin:       leg.CabinClass,
			AirlineCode: airport.AirlineCode(f.Airline),
		})
	}

	return flights
}

func searchInfo(legs flight.Legs) dto.SearchInfo {
	info := dto.SearchInfo{
		From:          legs.Outbound.Origin,
		To:            legs.Outbound.Destination,
		FromCity:      airport.CityName(legs.Outbound.Origin),
		ToCity:        airport.CityName(legs.Outbound.Destination),
		DepartureDate: legs.Outbound.Date,
		Passengers:    passengers,
		CabinClass:    string(legs.Outbound.CabinClass),
	}

	if legs.Return != nil {
		info.ReturnDate = legs.Return.Date
	}

	return info
}
