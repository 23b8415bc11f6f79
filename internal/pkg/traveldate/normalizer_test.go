//go:build unit

package traveldate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(WithClock(fixedClock))

	normalizeRequest := func(input, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, n.Normalize(input))
		}
	}

	t.Run("short_month", normalizeRequest("15 Jun 2025", "2025-06-15"))
	t.Run("single_digit_day", normalizeRequest("5 Jul 2025", "2025-07-05"))
	t.Run("long_month", normalizeRequest("21 September 2025", "2025-09-21"))
	t.Run("extra_spaces", normalizeRequest("  15   Jun 2025 ", "2025-06-15"))
	t.Run("canonical", normalizeRequest("2025-06-15", "2025-06-15"))
	t.Run("empty_falls_back", normalizeRequest("", "2025-06-08"))
	t.Run("sentinel_falls_back", normalizeRequest("Not specified", "2025-06-08"))
	t.Run("garbage_falls_back", normalizeRequest("next friday", "2025-06-08"))
	t.Run("impossible_date_falls_back", normalizeRequest("31 Feb 2025", "2025-06-08"))
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := NewNormalizer(WithClock(fixedClock))

	for _, in := range []string{"15 Jun 2025", "1 Jan 2026", "2025-12-31", "", "nonsense"} {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "input %q", in)
	}
}

func TestNormalizer_FallbackUsesCallTime(t *testing.T) {
	current := fixedClock()
	n := NewNormalizer(WithClock(func() time.Time { return current }))

	assert.Equal(t, "2025-06-08", n.Fallback())

	current = current.AddDate(0, 0, 1)
	assert.Equal(t, "2025-06-09", n.Fallback())
}

func TestNormalizer_DefaultClock(t *testing.T) {
	n := NewNormalizer()

	got, err := time.Parse(Layout, n.Normalize(""))
	assert.NoError(t, err)

	want := time.Now().AddDate(0, 0, 7)
	assert.WithinDuration(t, want, got, 48*time.Hour)
}

func TestIsSpecified(t *testing.T) {
	assert.False(t, IsSpecified(""))
	assert.False(t, IsSpecified("  "))
	assert.False(t, IsSpecified("not specified"))
	assert.True(t, IsSpecified("15 Jun 2025"))
}
