//go:build unit

package flight

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "best_flights": [
    {
      "flights": [
        {
          "departure_airport": {"name": "Kempegowda International Airport", "id": "BLR", "time": "2025-06-15 14:30"},
          "arrival_airport": {"name": "Singapore Changi Airport", "id": "SIN", "time": "2025-06-15 21:40"},
          "duration": 280,
          "airline": "IndiGo",
          "flight_number": "6E 1005"
        }
      ],
      "total_duration": 280,
      "price": 15432,
      "type": "One way",
      "booking_token": "booking-a"
    }
  ],
  "other_flights": [
    {
      "flights": [
        {
          "departure_airport": {"id": "BLR", "time": "2025-06-15 06:15"},
          "arrival_airport": {"id": "MAA", "time": "2025-06-15 07:20"},
          "airline": "Air India",
          "flight_number": "AI 501"
        },
        {
          "departure_airport": {"id": "MAA", "time": "2025-06-15 09:00"},
          "arrival_airport": {"id": "SIN", "time": "2025-06-15 15:55"},
          "airline": "Air India",
          "flight_number": "AI 346"
        }
      ],
      "layovers": [{"duration": 100, "name": "Chennai International Airport", "id": "MAA"}],
      "total_duration": 490,
      "price": "unavailable",
      "total_price": 22000,
      "departure_token": "departure-b"
    },
    {
      "flights": [
        {
          "departure_airport": {"id": "BLR", "time": "2025-06-15 23:00"},
          "arrival_airport": {"id": "SIN", "time": "2025-06-16 06:05"},
          "airline": "Singapore Airlines",
          "flight_number": "SQ 503"
        }
      ],
      "total_duration": 275,
      "price": 30999
    },
    {
      "flights": [
        {
          "departure_airport": {"id": "BLR", "time": "2025-06-15 10:00"},
          "arrival_airport": {"id": "SIN", "time": "2025-06-15 17:00"},
          "airline": "SpiceJet",
          "flight_number": "SG 11"
        }
      ],
      "total_duration": 300
    }
  ],
  "price_insights": {"lowest_price": 15432}
}`

func decodeSample(t *testing.T) flightprovider.SearchResponse {
	t.Helper()

	var resp flightprovider.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &resp))

	return resp
}

func TestParseFlights(t *testing.T) {
	flights := ParseFlights(context.Background(), decodeSample(t))

	require.Len(t, flights, 3, "the record without a price must be dropped")

	// sorted by departure clock time: 06:15, 14:30, 23:00
	assert.Equal(t, "AI 501", flights[0].FlightNumber)
	assert.Equal(t, "6E 1005", flights[1].FlightNumber)
	assert.Equal(t, "SQ 503", flights[2].FlightNumber)

	connecting := flights[0]
	assert.Equal(t, "BLR → SIN", connecting.Route)
	assert.Equal(t, "06:15 Indian Time (IST)", connecting.DepartureTime)
	assert.Equal(t, "15:55 Singapore Time (SGT)", connecting.ArrivalTime)
	assert.Equal(t, "8h 10m", connecting.Duration.Formatted)
	assert.Equal(t, 22000.0, connecting.Price.Amount, "total_price is used when price is invalid")
	assert.Equal(t, "₹22,000", connecting.Price.Formatted)
	assert.Equal(t, 1, connecting.Stops)
	assert.Equal(t, "1 stop(s) (via MAA)", connecting.StopLabel)
	require.NotNil(t, connecting.PrimaryToken)
	assert.Equal(t, "departure-b", *connecting.PrimaryToken)

	direct := flights[1]
	assert.Equal(t, "Non-Stop", direct.StopLabel)
	assert.Equal(t, "INR", direct.Price.Currency)
	require.NotNil(t, direct.PrimaryToken)
	assert.Equal(t, "booking-a", *direct.PrimaryToken)

	assert.Nil(t, flights[2].PrimaryToken)
}

func TestExtractFlight_DropRules(t *testing.T) {
	valid := func() flightprovider.Itinerary {
		return flightprovider.Itinerary{
			Flights: []flightprovider.Segment{{
				DepartureAirport: flightprovider.Airport{ID: "BLR", Time: "2025-06-15 06:15"},
				ArrivalAirport:   flightprovider.Airport{ID: "DEL", Time: "2025-06-15 09:00"},
				Airline:          "IndiGo",
				FlightNumber:     "6E 201",
			}},
			TotalDuration: flightprovider.Number{Value: 165, Valid: true},
			Price:         flightprovider.Number{Value: 5000, Valid: true},
		}
	}

	dropRequest := func(mutate func(*flightprovider.Itinerary), wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			itinerary := valid()
			mutate(&itinerary)

			_, err := extractFlight(itinerary)
			assert.ErrorIs(t, err, wantErr)
		}
	}

	t.Run("valid", dropRequest(func(*flightprovider.Itinerary) {}, nil))
	t.Run("no_segments", dropRequest(func(it *flightprovider.Itinerary) { it.Flights = nil }, errNoSegments))
	t.Run("no_airline", dropRequest(func(it *flightprovider.Itinerary) { it.Flights[0].Airline = "" }, errNoAirline))
	t.Run("no_flight_number", dropRequest(func(it *flightprovider.Itinerary) { it.Flights[0].FlightNumber = "" }, errNoFlightNum))
	t.Run("no_departure_time", dropRequest(func(it *flightprovider.Itinerary) { it.Flights[0].DepartureAirport.Time = "" }, errNoTimes))
	t.Run("no_arrival_time", dropRequest(func(it *flightprovider.Itinerary) { it.Flights[0].ArrivalAirport.Time = "" }, errNoTimes))
	t.Run("zero_duration", dropRequest(func(it *flightprovider.Itinerary) { it.TotalDuration = flightprovider.Number{Valid: true} }, errNoDuration))
	t.Run("missing_price", dropRequest(func(it *flightprovider.Itinerary) { it.Price = flightprovider.Number{} }, errNoPrice))
	t.Run("negative_prices", dropRequest(func(it *flightprovider.Itinerary) {
		it.Price = flightprovider.Number{Value: -1, Valid: true}
		it.TotalPrice = flightprovider.Number{Value: 0, Valid: true}
	}, errNoPrice))
	t.Run("no_airport_id", dropRequest(func(it *flightprovider.Itinerary) { it.Flights[0].ArrivalAirport.ID = "" }, errNoAirportCode))
}

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "06:15 Indian Time (IST)", displayTime("2025-06-15 06:15", "BLR"))
	assert.Equal(t, "21:40 Local Time", displayTime("21:40", "XYZ"))
	assert.Equal(t, "07:05 UK Time (GMT/BST)", displayTime("2025-06-15T07:05", "LHR"))
}

func TestStopLabel(t *testing.T) {
	assert.Equal(t, "Non-Stop", stopLabel(0, nil))
	assert.Equal(t, "2 stop(s) (via DXB, LHR)", stopLabel(2, []string{"DXB", "LHR"}))
	assert.Equal(t, "1 stop(s)", stopLabel(1, nil))
}
