package endpoints

// Endpoints holds every endpoint exposed by the service.
type Endpoints struct {
	FlightEndpoint  FlightEndpoint
	BookingEndpoint BookingEndpoint
}
