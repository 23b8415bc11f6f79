//go:build unit

package booking

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/ijalalfrz/travel-flight-search/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
)

// validToken is 240 base64 characters.
func validToken() string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat("flight-token", 15)))
}

func TestValidateToken(t *testing.T) {
	validateRequest := func(token string, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := ValidateToken(token)
			if !wantErr {
				assert.NoError(t, err)
				return
			}

			assert.Equal(t, exception.KindInvalidToken, exception.KindOf(err))
		}
	}

	token := validToken()

	t.Run("valid", validateRequest(token, false))
	t.Run("too_short", validateRequest(strings.Repeat("A", 50), true))
	t.Run("too_long", validateRequest(strings.Repeat("A", 304), true))
	t.Run("embedded_newline", validateRequest(token[:100]+"\n"+token[101:], true))
	t.Run("embedded_space", validateRequest(token[:100]+" "+token[101:], true))
	t.Run("not_base64", validateRequest(strings.Repeat("!", 240), true))
	t.Run("bad_padding", validateRequest(strings.Repeat("A", 241), true))
}
