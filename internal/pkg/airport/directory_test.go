//go:build unit

package airport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	resolveRequest := func(input, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, Resolve(input))
		}
	}

	t.Run("exact", resolveRequest("bangalore", "BLR"))
	t.Run("exact_case_and_space", resolveRequest("  SINGAPORE ", "SIN"))
	t.Run("exact_multi_word", resolveRequest("New Delhi", "DEL"))
	t.Run("full_width_input", resolveRequest("Ｓｉｎｇａｐｏｒｅ", "SIN"))
	t.Run("ideographic_space", resolveRequest("\u3000ＤＥＬＨＩ\u3000", "DEL"))
	t.Run("substring_of_input", resolveRequest("Bengaluru Intl", "BLR"))
	t.Run("typo_via_short_alias", resolveRequest("hydrabad", "HYD"))
	t.Run("typo_fuzzy", resolveRequest("mumbay", "BOM"))
	t.Run("typo_fuzzy_long", resolveRequest("singapur", "SIN"))
	t.Run("no_match_defaults", resolveRequest("xyzzy", DefaultCode))
	t.Run("blank_defaults", resolveRequest("   ", DefaultCode))
}

func TestResolve_AlwaysThreeLetters(t *testing.T) {
	inputs := []string{"a", "zz", "qwertyuiop", "Frankfurt am Main", "tokio", "京都"}
	for _, in := range inputs {
		code := Resolve(in)
		assert.Len(t, code, 3, "input %q", in)
	}
}

func TestResolveWithCity(t *testing.T) {
	code, city := ResolveWithCity("bombay")
	assert.Equal(t, "BOM", code)
	assert.Equal(t, "Mumbai", city)
}

func TestSimilarity(t *testing.T) {
	// prefix 5 of 6, jaccard 4 of 6
	assert.InDelta(t, 0.7*5.0/6.0+0.3*4.0/6.0, similarity("mumbay", "mumbai"), 1e-9)
	assert.InDelta(t, 1.0, similarity("goa", "goa"), 1e-9)
	assert.InDelta(t, 0.0, similarity("xyz", "abc"), 1e-9)
}

func TestCityName(t *testing.T) {
	cityRequest := func(code, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, CityName(code))
		}
	}

	t.Run("known", cityRequest("SIN", "Singapore"))
	t.Run("lowercase", cityRequest("blr", "Bangalore"))
	t.Run("reverse_only_entry", cityRequest("LKO", "Lucknow"))
	t.Run("unknown_returns_code", cityRequest("ZZZ", "ZZZ"))
}

func TestTimezoneLabel(t *testing.T) {
	assert.Equal(t, "Singapore Time (SGT)", TimezoneLabel("SIN"))
	assert.Equal(t, "Indian Time (IST)", TimezoneLabel("blr"))
	assert.Equal(t, "Local Time", TimezoneLabel("XYZ"))
}

func TestAirlineCode(t *testing.T) {
	codeRequest := func(airline, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, AirlineCode(airline))
		}
	}

	t.Run("exact", codeRequest("IndiGo", "6E"))
	t.Run("longest_contained_name", codeRequest("Operated by Air India Express", "IX"))
	t.Run("contained_name", codeRequest("Emirates Airline", "EK"))
	t.Run("full_width", codeRequest("ＩｎｄｉＧｏ", "6E"))
	t.Run("unknown", codeRequest("Unknown Air", ""))
	t.Run("blank", codeRequest("", ""))
}

func TestIsDomestic(t *testing.T) {
	assert.True(t, IsDomestic("BLR", "del"))
	assert.False(t, IsDomestic("BLR", "SIN"))
	assert.False(t, IsDomestic("TRV", "BLR"))
}
