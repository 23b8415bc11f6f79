package flight

import (
	"slices"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
)

// SortByDeparture orders flights by departure clock time, earliest first.
// Flights whose time cannot be read sort before all others; equal times
// keep provider order.
func SortByDeparture(flights []dto.Flight) []dto.Flight {
	slices.SortStableFunc(flights, func(a, b dto.Flight) int {
		return departureMinutes(a.RawDepartureTime) - departureMinutes(b.RawDepartureTime)
	})

	return flights
}

// departureMinutes returns minutes after midnight, or -1 when unparseable.
func departureMinutes(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return -1
	}

	clock := raw
	if fields := strings.Fields(raw); len(fields) > 1 {
		clock = fields[1]
	}

	t, err := time.Parse("15:04", clock)
	if err != nil {
		return -1
	}

	return t.Hour()*60 + t.Minute()
}
