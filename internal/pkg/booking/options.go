package booking

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/utils"
)

const (
	googleRedirectPrefix = "https://www.google.com/travel/clk"
	// shorter redirect URLs are the bare endpoint without redirect data
	minGoogleRedirectLength = 50

	unknownPrice = "See prices"
	directSearch = "Direct Search"
)

type candidate struct {
	option dto.BookingOption
	tier   Tier
}

// Resolve prioritizes the provider's booking options, resolves a usable
// GET link for each and, when the preferred platforms are missing and
// there is room, adds direct search links for them. The result never
// holds more than MaxOptions entries.
func Resolve(ctx context.Context, raw []flightprovider.RawBookingOption, link SearchLink) []dto.BookingOption {
	candidates := make([]candidate, 0, len(raw))
	for _, option := range raw {
		c := toCandidate(option, link)
		slog.DebugContext(ctx, "booking source",
			slog.String("platform", c.option.Platform),
			slog.Int("tier", int(c.tier)))
		candidates = append(candidates, c)
	}

	selected := Prioritize(candidates, func(c candidate) Tier { return c.tier })

	if link.Complete() {
		selected = addFallbacks(selected, link)
	}

	options := make([]dto.BookingOption, 0, len(selected))
	for _, c := range selected {
		options = append(options, c.option)
	}

	return options
}

func toCandidate(option flightprovider.RawBookingOption, link SearchLink) candidate {
	platform, price, request, rawURL, marketedAs := flatten(option)
	tier := Classify(platform)

	out := dto.BookingOption{
		Platform:     platform,
		PriceDisplay: unknownPrice,
		URL:          ResolveURL(platform, request, rawURL, link),
		MarketedAs:   marketedAs,
		Tier:         int(tier),
	}

	if amount, ok := price.Positive(); ok {
		out.Price = &amount
		out.PriceDisplay = utils.FormatRupee(amount)
	}

	return candidate{option: out, tier: tier}
}

// flatten reads the platform name and link data from either the
// top-level fields or the "together" block.
func flatten(option flightprovider.RawBookingOption) (string, flightprovider.Number, *flightprovider.BookingRequest, string, []string) {
	platform := option.BookWith
	price := option.Price
	request := option.BookingRequest
	rawURL := option.Link
	var marketedAs []string

	if t := option.Together; t != nil {
		marketedAs = t.MarketedAs
		if platform == "" {
			platform = t.BookWith
		}
		if platform == "" {
			platform = strings.Join(t.MarketedAs, ", ")
		}
		if !price.Valid {
			price = t.Price
		}
		if request == nil {
			request = t.BookingRequest
		}
		if rawURL == "" {
			rawURL = t.Link
		}
	}

	if platform == "" {
		platform = "Unknown"
	}

	return platform, price, request, rawURL, marketedAs
}

// ResolveURL picks the link to hand to the user: the provider's own
// request (a POST turned into a GET), then a complete Google redirect,
// then any external link, and finally a pre-filled platform search when
// the route is known. It returns "" when nothing usable is left.
func ResolveURL(platform string, request *flightprovider.BookingRequest, rawURL string, link SearchLink) string {
	if request != nil && request.URL != "" {
		if request.PostData != "" {
			return PostToGet(request.URL, request.PostData)
		}
		if !shortRedirect(request.URL) {
			return request.URL
		}
	}

	if strings.HasPrefix(rawURL, googleRedirectPrefix) {
		if !shortRedirect(rawURL) {
			return rawURL
		}
	} else if strings.HasPrefix(rawURL, "http") && !strings.Contains(rawURL, "google.com") {
		return rawURL
	}

	return PlatformURL(platform, link)
}

// shortRedirect reports a Google click-through stub too short to carry
// the booking parameters.
func shortRedirect(u string) bool {
	return strings.HasPrefix(u, googleRedirectPrefix) && len(u) <= minGoogleRedirectLength
}

// PostToGet appends a form-encoded body to the URL's query string.
func PostToGet(endpoint, postData string) string {
	postData = strings.TrimPrefix(postData, "?")
	if strings.Contains(endpoint, "?") {
		return endpoint + "&" + postData
	}

	return endpoint + "?" + postData
}

// addFallbacks inserts a MakeMyTrip search first when no top-platform
// option exists, and the first missing preferred platform right after
// the last top or preferred entry when fewer than two are present.
func addFallbacks(selected []candidate, link SearchLink) []candidate {
	hasTop := false
	preferred := 0
	present := map[string]bool{}
	for _, c := range selected {
		switch c.tier {
		case TierTopPlatform:
			hasTop = true
		case TierPreferred:
			preferred++
		}
		present[strings.ToLower(c.option.Platform)] = true
	}

	if !hasTop && len(selected) < MaxOptions {
		selected = slices.Insert(selected, 0, synthetic(PlatformMakeMyTrip, TierTopPlatform, link))
	}

	if preferred < tierLimit(TierPreferred) && len(selected) < MaxOptions {
		if platform, ok := nextPreferred(present); ok {
			selected = slices.Insert(selected, lastPreferredIndex(selected)+1, synthetic(platform, TierPreferred, link))
		}
	}

	return selected[:min(len(selected), MaxOptions)]
}

func synthetic(platform string, tier Tier, link SearchLink) candidate {
	return candidate{
		option: dto.BookingOption{
			Platform:     platform,
			PriceDisplay: unknownPrice,
			URL:          PlatformURL(platform, link),
			MarketedAs:   []string{directSearch},
			Tier:         int(tier),
			Fallback:     true,
		},
		tier: tier,
	}
}

func nextPreferred(present map[string]bool) (string, bool) {
	for _, platform := range PreferredPlatforms {
		needle := strings.ToLower(platform)
		found := false
		for name := range present {
			if strings.Contains(name, needle) {
				found = true
				break
			}
		}
		if !found {
			return platform, true
		}
	}

	return "", false
}

func lastPreferredIndex(selected []candidate) int {
	last := -1
	for i, c := range selected {
		if c.tier == TierTopPlatform || c.tier == TierPreferred {
			last = i
		}
	}

	return last
}

func tierLimit(tier Tier) int {
	for _, rule := range tierTable {
		if rule.tier == tier {
			return rule.limit
		}
	}

	return MaxOptions
}
