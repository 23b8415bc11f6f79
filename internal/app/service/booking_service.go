package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/booking"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider"
)

type BookingService struct {
	Provider flightprovider.FlightProvider
}

func NewBookingService(provider flightprovider.FlightProvider) *BookingService {
	return &BookingService{
		Provider: provider,
	}
}

// BookingOptions resolves a booking handle or bare provider token into
// at most four booking links. Every call goes to the provider.
// BookingOptions godoc
// @Summary      Resolve booking options
// @Tags         Flights
// @Description  Resolve a flight's booking token into prioritized booking links
// @Param        request  body      dto.BookingOptionsRequest  true  "Booking token and optional route"
// @Success      200      {object}  dto.BookingOptionsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      410      {object}  dto.ErrorResponse
// @Failure      429      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/booking-options [post]
func (s *BookingService) BookingOptions(
	ctx context.Context,
	req dto.BookingOptionsRequest,
) (dto.BookingOptionsResponse, error) {
	token, fc := resolveToken(req)

	slog.DebugContext(ctx, "resolving booking options",
		slog.String("token", token),
		slog.String("departure_id", fc.DepartureID),
		slog.String("arrival_id", fc.ArrivalID),
		slog.String("trip_type", string(fc.TripType)))

	if err := booking.ValidateToken(token); err != nil {
		return dto.BookingOptionsResponse{}, err
	}

	resp, err := s.Provider.BookingOptions(ctx, booking.RequestParams(token, fc))
	if err != nil {
		return dto.BookingOptionsResponse{}, fmt.Errorf("failed to get booking options: %w", err)
	}

	options := booking.Resolve(ctx, resp.BookingOptions, booking.SearchLink{
		From:  fc.DepartureID,
		To:    fc.ArrivalID,
		Date:  fc.OutboundDate,
		Cabin: dto.CabinEconomy,
	})

	return dto.BookingOptionsResponse{
		BookingOptions:  options,
		SelectedFlights: resp.SelectedFlights,
		BaggagePrices:   resp.BaggagePrices,
		BookingPhone:    resp.BookingPhone,
		PriceInsights:   resp.PriceInsights,
	}, nil
}

// resolveToken unwraps a booking handle. The handle's own route wins over
// the caller's; a bare token is always booked one-way.
func resolveToken(req dto.BookingOptionsRequest) (string, booking.FlightContext) {
	caller := booking.FlightContext{
		DepartureID:  req.DepartureID,
		ArrivalID:    req.ArrivalID,
		OutboundDate: req.OutboundDate,
		TripType:     dto.TripOneWay,
	}

	switch decoded := booking.DecodeToken(req.Token).(type) {
	case booking.Decoded:
		return decoded.Token, decoded.Context.Merge(caller)
	case booking.Raw:
		return decoded.Token, caller
	default:
		return req.Token, caller
	}
}
