// Package airport maps free-text city names to IATA codes and back.
package airport

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

const (
	// DefaultCode is returned when no city in the directory resembles the input.
	DefaultCode = "BLR"

	defaultTimezoneLabel = "Local Time"
	fuzzyThreshold       = 0.6
	minFuzzyLength       = 3
)

// Resolve returns the IATA code for a city name. It never fails: when
// neither an exact, substring nor fuzzy match is found DefaultCode is
// returned.
func Resolve(cityName string) string {
	code, _ := lookup(cityName)
	return code
}

// ResolveWithCity is Resolve plus the directory's spelling of the city
// for the resolved code.
func ResolveWithCity(cityName string) (string, string) {
	code := Resolve(cityName)
	return code, CityName(code)
}

// lookup reports whether the code came from the table rather than the default.
func lookup(cityName string) (string, bool) {
	name := fold(cityName)
	if name == "" {
		return DefaultCode, false
	}

	for _, entry := range cityCodes {
		if entry.city == name {
			return entry.code, true
		}
	}

	for _, entry := range cityCodes {
		if strings.Contains(entry.city, name) || strings.Contains(name, entry.city) {
			return entry.code, true
		}
	}

	if code, ok := fuzzyMatch(name); ok {
		return code, true
	}

	return DefaultCode, false
}

// fold lower-cases free text for table lookups, mapping full-width
// characters to their ASCII forms first. A Caser is not safe for
// concurrent use, so one is made per call.
func fold(s string) string {
	return strings.TrimSpace(cases.Fold().String(width.Fold.String(s)))
}

func fuzzyMatch(name string) (string, bool) {
	if len(name) < minFuzzyLength {
		return "", false
	}

	var (
		bestCode  string
		bestScore float64
	)

	for _, entry := range cityCodes {
		if len(entry.city) < minFuzzyLength {
			continue
		}

		score := similarity(name, entry.city)
		// strict comparison keeps the first entry on ties
		if score > fuzzyThreshold && score > bestScore {
			bestScore = score
			bestCode = entry.code
		}
	}

	return bestCode, bestCode != ""
}

// similarity weighs the shared prefix at 0.7 and the Jaccard index of
// the two character sets at 0.3.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	minLen := min(len(ra), len(rb))
	if minLen == 0 {
		return 0
	}

	prefix := 0
	for i := 0; i < minLen && ra[i] == rb[i]; i++ {
		prefix++
	}

	return 0.7*float64(prefix)/float64(minLen) + 0.3*jaccard(ra, rb)
}

func jaccard(a, b []rune) float64 {
	setA := make(map[rune]struct{}, len(a))
	for _, r := range a {
		setA[r] = struct{}{}
	}

	union := make(map[rune]struct{}, len(a)+len(b))
	for r := range setA {
		union[r] = struct{}{}
	}

	seen := make(map[rune]struct{}, len(b))
	intersection := 0
	for _, r := range b {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		union[r] = struct{}{}
		if _, ok := setA[r]; ok {
			intersection++
		}
	}

	if len(union) == 0 {
		return 0
	}

	return float64(intersection) / float64(len(union))
}

// CityName returns the canonical city for an IATA code, or the code
// itself when it is unknown.
func CityName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if city, ok := codeCities[code]; ok {
		return city
	}

	return code
}

// TimezoneLabel is a display label only.
func TimezoneLabel(code string) string {
	if label, ok := timezoneLabels[strings.ToUpper(code)]; ok {
		return label
	}

	return defaultTimezoneLabel
}

// AirlineCode returns the two-character carrier code for an airline
// name, or "" when the airline is not in the table.
func AirlineCode(airline string) string {
	name := fold(airline)
	if name == "" {
		return ""
	}

	if code, ok := airlineCodes[name]; ok {
		return code
	}

	// longest table name contained in the input wins, so
	// "Air India Express" is not reported as Air India
	best := ""
	for known := range airlineCodes {
		if strings.Contains(name, known) && len(known) > len(best) {
			best = known
		}
	}

	if best == "" {
		return ""
	}

	return airlineCodes[best]
}

// IsDomestic reports whether both airports are Indian domestic airports.
func IsDomestic(from, to string) bool {
	_, okFrom := domesticAirports[strings.ToUpper(from)]
	_, okTo := domesticAirports[strings.ToUpper(to)]

	return okFrom && okTo
}
