package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
)

// BookingOption is one place the flight can be booked. Price is nil when
// the platform did not quote one.
type BookingOption struct {
	Platform     string   `json:"platform"`
	Price        *float64 `json:"price"`
	PriceDisplay string   `json:"price_display"`
	URL          string   `json:"url"`
	MarketedAs   []string `json:"marketed_as,omitempty"`
	Tier         int      `json:"tier"`
	// Fallback marks a synthesized search link rather than a
	// provider-confirmed offer.
	Fallback bool `json:"fallback"`
}

type BookingOptionsRequest struct {
	Token        string `json:"token" validate:"required"`
	DepartureID  string `json:"departure_id,omitempty" validate:"omitempty,len=3,alpha"`
	ArrivalID    string `json:"arrival_id,omitempty" validate:"omitempty,len=3,alpha"`
	OutboundDate string `json:"outbound_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (b *BookingOptionsRequest) Bind(r *http.Request) error {
	b.Token = strings.TrimSpace(b.Token)
	b.DepartureID = strings.ToUpper(strings.TrimSpace(b.DepartureID))
	b.ArrivalID = strings.ToUpper(strings.TrimSpace(b.ArrivalID))

	if err := b.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (b *BookingOptionsRequest) Validate() error {
	if err := ValidateSingleError(b); err != nil {
		return exception.New(exception.KindBadRequest, err.Error())
	}

	return nil
}

type BookingOptionsResponse struct {
	BookingOptions  []BookingOption `json:"booking_options"`
	SelectedFlights json.RawMessage `json:"selected_flights"`
	BaggagePrices   json.RawMessage `json:"baggage_prices"`
	BookingPhone    string          `json:"booking_phone"`
	PriceInsights   json.RawMessage `json:"price_insights"`
}
