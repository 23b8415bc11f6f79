package flight

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
)

// FilterFlights applies the caller's post-search preferences. Order is preserved.
func FilterFlights(ctx context.Context, flights []dto.Flight, filterOpts *dto.FilterOption) []dto.Flight {
	if filterOpts == nil {
		return flights
	}

	results := make([]dto.Flight, 0, len(flights))

	for _, flight := range flights {
		if filterOpts.Airline != nil &&
			!strings.Contains(strings.ToLower(flight.Airline), strings.ToLower(strings.TrimSpace(*filterOpts.Airline))) {
			continue
		}

		if filterOpts.MaxPrice != nil && flight.Price.Amount > *filterOpts.MaxPrice {
			continue
		}

		if filterOpts.MinPrice != nil && flight.Price.Amount < *filterOpts.MinPrice {
			continue
		}

		if filterOpts.MaxStops != nil && flight.Stops > *filterOpts.MaxStops {
			continue
		}

		if filterOpts.DepartureTimeStart != nil && filterOpts.DepartureTimeEnd != nil {
			if !isWithinTimeRange(ctx, flight.RawDepartureTime, *filterOpts.DepartureTimeStart, *filterOpts.DepartureTimeEnd) {
				continue
			}
		}

		results = append(results, flight)
	}

	return results
}

// startTime and endTime are clock times in the departure airport's local time,
// which is how the provider reports departures.
func isWithinTimeRange(ctx context.Context, targetTime string, startTime string, endTime string) bool {
	target := departureMinutes(targetTime)
	if target < 0 {
		return false
	}

	start, err := time.Parse("15:04", startTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse start time", slog.String("time", startTime), slog.Any("error", err))
		return false
	}

	end, err := time.Parse("15:04", endTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse end time", slog.String("time", endTime), slog.Any("error", err))
		return false
	}

	return target >= start.Hour()*60+start.Minute() &&
		target <= end.Hour()*60+end.Minute()
}
