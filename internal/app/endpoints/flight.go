package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
)

type FlightSearchService interface {
	SearchFlights(ctx context.Context, req dto.SearchFlightRequest) (dto.SearchFlightResponse, error)
}

type FlightEndpoint struct {
	SearchFlights endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightSearchService) FlightEndpoint {
	return FlightEndpoint{
		SearchFlights: makeSearchFlightsEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service FlightSearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchFlightRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		flights, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight search service: %w", err)
		}

		return flights, nil
	}
}
