package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m", 120 -> "2h 0m"
func ConvertMinutesToDuration(durationInMinutes int64) string {
	h := durationInMinutes / 60
	m := durationInMinutes % 60

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatRupee formats a whole-rupee display price with thousands separators.
// Example: 12345.4 -> "₹12,345"
func FormatRupee(amount float64) string {
	return pricePrinter.Sprintf("₹%.0f", amount)
}
