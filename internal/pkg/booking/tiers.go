package booking

import (
	"regexp"
	"strings"
)

type Tier int

const (
	TierTopPlatform Tier = iota + 1
	TierPreferred
	TierAirline
	TierOther
)

// MaxOptions caps every booking option list.
const MaxOptions = 4

type pattern struct {
	text string
	word *regexp.Regexp
}

func (p pattern) match(name string) bool {
	if p.word != nil {
		return p.word.MatchString(name)
	}

	return strings.Contains(name, p.text)
}

func substr(text string) pattern {
	return pattern{text: text}
}

// word matches only as a whole word, so "ai" does not match "thai".
func word(text string) pattern {
	return pattern{text: text, word: regexp.MustCompile(`\b` + regexp.QuoteMeta(text) + `\b`)}
}

type tierRule struct {
	tier     Tier
	limit    int
	patterns []pattern
}

// tierTable is evaluated top to bottom; an option lands in the first
// tier with a matching pattern and in TierOther otherwise.
var tierTable = []tierRule{
	{
		tier:     TierTopPlatform,
		limit:    1,
		patterns: []pattern{substr("makemytrip"), substr("make my trip"), substr("mmt")},
	},
	{
		tier:     TierPreferred,
		limit:    2,
		patterns: []pattern{substr("cleartrip"), substr("goibibo"), substr("yatra"), substr("ixigo"), substr("easemytrip")},
	},
	{
		tier:  TierAirline,
		limit: 1,
		patterns: []pattern{
			substr("air india"), substr("indigo"), word("6e"), substr("spicejet"), substr("vistara"),
			substr("jet airways"), substr("akasa"), substr("lufthansa"), substr("emirates"),
			substr("singapore airlines"), substr("thai airways"), word("ai"),
		},
	},
}

// Classify returns the tier for a platform name.
func Classify(platform string) Tier {
	name := strings.ToLower(strings.TrimSpace(platform))
	if name == "" {
		return TierOther
	}

	for _, rule := range tierTable {
		for _, p := range rule.patterns {
			if p.match(name) {
				return rule.tier
			}
		}
	}

	return TierOther
}

// Prioritize keeps at most one top-platform option, two preferred
// platforms and one airline, then fills up to MaxOptions from everything
// else. Relative order inside a tier is preserved.
func Prioritize[T any](options []T, tierOf func(T) Tier) []T {
	buckets := make(map[Tier][]T, len(tierTable)+1)
	for _, option := range options {
		tier := tierOf(option)
		buckets[tier] = append(buckets[tier], option)
	}

	selected := make([]T, 0, MaxOptions)
	for _, rule := range tierTable {
		take := min(rule.limit, MaxOptions-len(selected), len(buckets[rule.tier]))
		selected = append(selected, buckets[rule.tier][:take]...)
	}

	take := min(MaxOptions-len(selected), len(buckets[TierOther]))
	selected = append(selected, buckets[TierOther][:take]...)

	if len(selected) == 0 && len(options) > 0 {
		return options[:min(MaxOptions, len(options))]
	}

	return selected
}
