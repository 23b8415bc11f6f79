// Package traveldate turns loosely formatted travel dates into the
// YYYY-MM-DD form the flight provider expects.
package traveldate

import (
	"strings"
	"time"
)

const (
	// Layout is the canonical output layout.
	Layout = "2006-01-02"

	// NotSpecified is the placeholder the text extractor emits for a
	// missing field.
	NotSpecified = "Not specified"

	fallbackDays = 7
)

var inputLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
	Layout,
}

// Normalizer parses dates relative to its clock.
type Normalizer struct {
	now func() time.Time
}

type Option func(*Normalizer)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{now: time.Now}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize returns the date as YYYY-MM-DD. Blank, placeholder or
// unparsable input falls back to seven days from now.
func (n *Normalizer) Normalize(value string) string {
	if t, ok := Parse(value); ok {
		return t.Format(Layout)
	}

	return n.Fallback()
}

// Fallback is computed on every call.
func (n *Normalizer) Fallback() string {
	return n.now().AddDate(0, 0, fallbackDays).Format(Layout)
}

// Parse reports whether value is a date in one of the accepted layouts.
func Parse(value string) (time.Time, bool) {
	value = strings.Join(strings.Fields(value), " ")
	if !IsSpecified(value) {
		return time.Time{}, false
	}

	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// IsSpecified reports whether value carries any date text at all.
func IsSpecified(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && !strings.EqualFold(value, NotSpecified)
}
