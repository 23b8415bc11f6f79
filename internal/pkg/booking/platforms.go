package booking

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/airport"
)

const (
	PlatformMakeMyTrip = "MakeMyTrip"
	PlatformCleartrip  = "Cleartrip"
	PlatformGoibibo    = "Goibibo"
	PlatformYatra      = "Yatra"
	PlatformIxigo      = "Ixigo"
	PlatformEaseMyTrip = "EaseMyTrip"
	PlatformIndiGo     = "IndiGo"
	PlatformAirIndia   = "Air India"
	PlatformVistara    = "Vistara"
	PlatformSpiceJet   = "SpiceJet"
)

// PreferredPlatforms are the secondary platforms in priority order.
var PreferredPlatforms = []string{
	PlatformCleartrip, PlatformGoibibo, PlatformYatra, PlatformIxigo, PlatformEaseMyTrip,
}

// SearchLink is what a platform needs to open a pre-filled search.
type SearchLink struct {
	From        string
	To          string
	Date        string // YYYY-MM-DD
	Cabin       dto.CabinClass
	AirlineCode string
}

// Complete reports whether the link carries enough of the route to
// build a platform search.
func (l SearchLink) Complete() bool {
	return l.From != "" && l.To != "" && l.Date != ""
}

type platformTemplate struct {
	name     string
	patterns []string
	build    func(SearchLink, time.Time) string
}

// platformTemplates is matched in order against the lowercased platform name.
var platformTemplates = []platformTemplate{
	{PlatformIndiGo, []string{"indigo"}, indigoURL},
	{PlatformMakeMyTrip, []string{"makemytrip", "make my trip", "travomint"}, makeMyTripURL},
	{PlatformCleartrip, []string{"cleartrip"}, cleartripURL},
	{PlatformGoibibo, []string{"goibibo"}, goibiboURL},
	{PlatformYatra, []string{"yatra"}, yatraURL},
	{PlatformIxigo, []string{"ixigo"}, ixigoURL},
	{PlatformEaseMyTrip, []string{"easemytrip"}, easeMyTripURL},
	{PlatformAirIndia, []string{"air india"}, airIndiaURL},
	{PlatformVistara, []string{"vistara"}, vistaraURL},
	{PlatformSpiceJet, []string{"spicejet"}, spiceJetURL},
}

// PlatformURL builds a direct search URL for the platform. Unknown
// platforms get a MakeMyTrip search.
func PlatformURL(platform string, link SearchLink) string {
	if !link.Complete() {
		return ""
	}

	date, _ := time.Parse("2006-01-02", link.Date)

	name := strings.ToLower(platform)
	for _, tpl := range platformTemplates {
		for _, p := range tpl.patterns {
			if strings.Contains(name, p) {
				return tpl.build(link, date)
			}
		}
	}

	return makeMyTripURL(link, date)
}

// formatDate falls back to the raw value when the date did not parse.
func formatDate(link SearchLink, date time.Time, layout string) string {
	if date.IsZero() {
		return link.Date
	}

	return date.Format(layout)
}

func cabinCode(cabin dto.CabinClass) string {
	switch cabin {
	case dto.CabinPremiumEconomy:
		return "W"
	case dto.CabinBusiness:
		return "B"
	case dto.CabinFirst:
		return "F"
	default:
		return "E"
	}
}

func cabinName(cabin dto.CabinClass) string {
	switch cabin {
	case dto.CabinPremiumEconomy:
		return "Premium Economy"
	case dto.CabinBusiness:
		return "Business"
	case dto.CabinFirst:
		return "First"
	default:
		return "Economy"
	}
}

func makeMyTripURL(link SearchLink, date time.Time) string {
	intl := "true"
	if airport.IsDomestic(link.From, link.To) {
		intl = "false"
	}

	u := fmt.Sprintf("https://www.makemytrip.com/flight/search?itinerary=%s-%s-%s&tripType=O&paxType=A-1_C-0_I-0&intl=%s&cabinClass=%s&ccde=IN&lang=eng&sort=departure_time",
		url.QueryEscape(link.From), url.QueryEscape(link.To), formatDate(link, date, "02/01/2006"), intl, cabinCode(link.Cabin))

	if link.AirlineCode != "" {
		u += "&airline=" + url.QueryEscape(link.AirlineCode)
	}

	return u
}

func cleartripURL(link SearchLink, date time.Time) string {
	return fmt.Sprintf("https://www.cleartrip.com/flights/results?from=%s&to=%s&depart_date=%s&adults=1&children=0&infants=0&class=%s&airline=&carrier=",
		url.QueryEscape(link.From), url.QueryEscape(link.To), formatDate(link, date, "02/01/2006"), url.QueryEscape(cabinName(link.Cabin)))
}

func goibiboURL(link SearchLink, date time.Time) string {
	return fmt.Sprintf("https://www.goibibo.com/flights/%s-%s/?depdate=%s&seatingclass=%s&adults=1&children=0&infants=0",
		url.PathEscape(link.From), url.PathEscape(link.To), formatDate(link, date, "2006-01-02"), cabinCode(link.Cabin))
}

func yatraURL(link SearchLink, date time.Time) string {
	d := url.QueryEscape(formatDate(link, date, "02/01/2006"))
	return fmt.Sprintf("https://www.yatra.com/flights/search?from=%s&to=%s&departure=%s&class=%s&passenger=1-0-0&flight_depart_date=%s",
		url.QueryEscape(link.From), url.QueryEscape(link.To), d, url.QueryEscape(cabinName(link.Cabin)), d)
}

func ixigoURL(link SearchLink, date time.Time) string {
	return fmt.Sprintf("https://www.ixigo.com/search/result/flight?from=%s&to=%s&date=%s&adults=1&children=0&infants=0&class=%s",
		url.QueryEscape(link.From), url.QueryEscape(link.To), formatDate(link, date, "02012006"), strings.ToLower(cabinCode(link.Cabin)))
}

func easeMyTripURL(link SearchLink, date time.Time) string {
	return fmt.Sprintf("https://www.easemytrip.com/flights/search?from=%s&to=%s&ddate=%s&adult=1&child=0&infant=0&cabin=%s",
		url.QueryEscape(link.From), url.QueryEscape(link.To), formatDate(link, date, "02/01/2006"), url.QueryEscape(cabinName(link.Cabin)))
}

func indigoURL(link SearchLink, date time.Time) string {
	return fmt.Sprintf("https://www.goindigo.in/flight-booking?origin=%s&destination=%s&departureDate=%s&tripType=oneway",
		url.QueryEscape(link.From), url.QueryEscape(link.To), formatDate(link, date, "2006-01-02"))
}

func airIndiaURL(link SearchLink, date time.Time) string {
	return fmt.Sprintf("https://www.airindia.in/book-flight?from=%s&to=%s&departure=%s&tripType=oneway&adults=1",
		url.QueryEscape(link.From), url.QueryEscape(link.To), formatDate(link, date, "2006-01-02"))
}

func vistaraURL(link SearchLink, date time.Time) string {
	return fmt.Sprintf("https://www.airvistara.com/booking?origin=%s&destination=%s&departureDate=%s&adults=1&tripType=oneway",
		url.QueryEscape(link.From), url.QueryEscape(link.To), formatDate(link, date, "2006-01-02"))
}

func spiceJetURL(link SearchLink, date time.Time) string {
	return fmt.Sprintf("https://www.spicejet.com/book-flight?from=%s&to=%s&departure=%s&tripType=oneway",
		url.QueryEscape(link.From), url.QueryEscape(link.To), formatDate(link, date, "2006-01-02"))
}
