package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/travel-flight-search/internal/app/config"
	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/travel-flight-search/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/flights", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.SearchFlightRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/booking-options", httptransport.MakeHandlerFunc(
			endpts.BookingEndpoint.BookingOptions,
			httptransport.DecodeRequest[dto.BookingOptionsRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
