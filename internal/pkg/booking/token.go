package booking

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
)

const (
	minTokenLength = 200
	maxTokenLength = 300
)

// ValidateToken rejects provider tokens that were truncated or mangled in
// transit. It runs before any provider call.
func ValidateToken(token string) error {
	if len(token) < minTokenLength || len(token) > maxTokenLength {
		return exception.New(exception.KindInvalidToken,
			fmt.Sprintf("Invalid booking token length: %d (expected %d-%d characters). Please try a new search.",
				len(token), minTokenLength, maxTokenLength))
	}

	if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return exception.New(exception.KindInvalidToken,
			"Booking token contains line breaks or whitespace corruption. Please try a new search.")
	}

	if _, err := base64.StdEncoding.DecodeString(token); err != nil {
		return exception.Wrap(exception.KindInvalidToken,
			"Booking token appears to be corrupted (invalid Base64 encoding). Please try a new search.", err)
	}

	return nil
}
