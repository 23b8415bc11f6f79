package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
)

type BookingService interface {
	BookingOptions(ctx context.Context, req dto.BookingOptionsRequest) (dto.BookingOptionsResponse, error)
}

type BookingEndpoint struct {
	BookingOptions endpoint.Endpoint
}

func MakeBookingEndpoint(service BookingService) BookingEndpoint {
	return BookingEndpoint{
		BookingOptions: makeBookingOptionsEndpoint(service),
	}
}

func makeBookingOptionsEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.BookingOptionsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		options, err := service.BookingOptions(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return options, nil
	}
}
