// Package booking turns provider booking options into a short, ordered
// list of links, filling gaps with direct search links for the preferred
// platforms.
package booking

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
)

// FlightContext is the route a booking token belongs to.
type FlightContext struct {
	DepartureID  string       `json:"departure_id,omitempty"`
	ArrivalID    string       `json:"arrival_id,omitempty"`
	OutboundDate string       `json:"outbound_date,omitempty"`
	ReturnDate   string       `json:"return_date,omitempty"`
	TripType     dto.TripType `json:"trip_type,omitempty"`
}

// Complete reports whether the context can build a platform search link.
func (c FlightContext) Complete() bool {
	return c.DepartureID != "" && c.ArrivalID != "" && c.OutboundDate != ""
}

// Merge fills empty fields of c from fallback.
func (c FlightContext) Merge(fallback FlightContext) FlightContext {
	if c.DepartureID == "" {
		c.DepartureID = fallback.DepartureID
	}
	if c.ArrivalID == "" {
		c.ArrivalID = fallback.ArrivalID
	}
	if c.OutboundDate == "" {
		c.OutboundDate = fallback.OutboundDate
	}
	if c.ReturnDate == "" {
		c.ReturnDate = fallback.ReturnDate
	}
	if c.TripType == "" {
		c.TripType = fallback.TripType
	}

	return c
}

type envelope struct {
	Token string `json:"token"`
	FlightContext
}

// EncodeHandle wraps a provider token and its route into a single
// self-describing booking handle.
func EncodeHandle(token string, fc FlightContext) (string, error) {
	if fc.TripType == "" {
		fc.TripType = dto.TripOneWay
	}

	data, err := json.Marshal(envelope{Token: token, FlightContext: fc})
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeResult is either Decoded or Raw.
type DecodeResult interface {
	isDecodeResult()
}

// Decoded is a booking handle that carried its own route.
type Decoded struct {
	Token   string
	Context FlightContext
}

// Raw is a bare provider token.
type Raw struct {
	Token string
}

func (Decoded) isDecodeResult() {}
func (Raw) isDecodeResult()     {}

// DecodeToken unwraps a booking handle. Anything that is not a handle
// with a non-empty inner token comes back as Raw.
func DecodeToken(token string) DecodeResult {
	token = strings.TrimSpace(token)

	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Raw{Token: token}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Token == "" {
		return Raw{Token: token}
	}

	return Decoded{Token: env.Token, Context: env.FlightContext}
}
